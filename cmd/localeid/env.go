package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/localeid"
	"github.com/spf13/cobra"
)

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the locale selected by the environment",
		Long: `Env reports the locale taken from LANGUAGE, LC_ALL, LC_MESSAGES or LANG,
its Unicode form and the message catalog fallbacks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := localeid.FromEnvironment()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			gettext, _ := l.Gettext()
			fmt.Fprintf(out, "gettext:   %s\n", gettext)
			if unicode, err := l.Unicode(); err == nil {
				fmt.Fprintf(out, "unicode:   %s\n", unicode)
			}
			fmt.Fprintf(out, "fallbacks: %s\n", strings.Join(l.Fallbacks(), " "))
			return nil
		},
	}
}
