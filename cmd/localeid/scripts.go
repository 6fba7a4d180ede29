package main

import (
	"fmt"
	"slices"

	"github.com/npillmayer/localeid/scripts"
	"github.com/spf13/cobra"
)

func newScriptsCommand() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "List the modifier to script table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var selected []string
			if prefix != "" {
				selected = scripts.ModifiersWithPrefix(prefix)
			}
			for _, p := range scripts.Pairs() {
				if prefix != "" && !slices.Contains(selected, p.Modifier) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", p.Modifier, p.Script)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only modifiers starting with prefix")
	return cmd
}
