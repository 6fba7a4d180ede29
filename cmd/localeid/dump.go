package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/localeid"
	"github.com/spf13/cobra"
)

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump id...",
		Short: "Show how identifiers parse in both formats",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range args {
				fmt.Fprintf(out, "%q\n", id)
				for _, f := range []localeid.Format{localeid.FormatGettext, localeid.FormatUnicode} {
					if err := dumpAs(out, f, id); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

func dumpAs(w io.Writer, f localeid.Format, id string) error {
	l, err := localeid.Parse(f, id)
	if err != nil {
		_, err = fmt.Fprintf(w, "\tnot a %s identifier: %v\n", f, err)
		return err
	}
	var b strings.Builder
	if err := l.Dump(&b); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\t%s identifier:\n", f); err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n") {
		if _, err := fmt.Fprintf(w, "\t\t%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
