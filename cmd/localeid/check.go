package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/localeid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var defaultCases []byte

// noRendering in an expectation means that the conversion has to fail.
const noRendering = "-"

type checkCase struct {
	ID               string `yaml:"id"`
	Gettext          bool   `yaml:"gettext"`
	Unicode          bool   `yaml:"unicode"`
	GettextToUnicode string `yaml:"gettext_to_unicode,omitempty"`
	UnicodeToGettext string `yaml:"unicode_to_gettext,omitempty"`
}

type checkFile struct {
	Cases []checkCase `yaml:"cases"`
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [cases.yaml]",
		Short: "Verify identifiers against a table of expectations",
		Long: `Check parses every identifier of an expectation table in both formats and
reports each deviation. Without an argument the built-in table is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := defaultCases
			if len(args) == 1 {
				var err error
				if data, err = os.ReadFile(args[0]); err != nil {
					return err
				}
			}
			var cases checkFile
			if err := yaml.Unmarshal(data, &cases); err != nil {
				return fmt.Errorf("cannot read expectations: %w", err)
			}
			failed := 0
			for _, c := range cases.Cases {
				if !runCheck(cmd.OutOrStdout(), c) {
					failed++
				}
			}
			tracer().Infof("checked %d identifiers, %d failed", len(cases.Cases), failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(cases.Cases))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "all %d checks ok\n", len(cases.Cases))
			return nil
		},
	}
}

// runCheck reports deviations of c to w and returns true if there are none.
func runCheck(w io.Writer, c checkCase) bool {
	ok := checkFormat(w, c.ID, localeid.FormatGettext, c.Gettext, localeid.FormatUnicode, c.GettextToUnicode)
	return checkFormat(w, c.ID, localeid.FormatUnicode, c.Unicode, localeid.FormatGettext, c.UnicodeToGettext) && ok
}

func checkFormat(w io.Writer, id string, f localeid.Format, valid bool, other localeid.Format, rendering string) bool {
	l, err := localeid.Parse(f, id)
	switch {
	case err != nil && valid:
		fmt.Fprintf(w, "FAIL %q should be a valid %s identifier: %v\n", id, f, err)
		return false
	case err == nil && !valid:
		fmt.Fprintf(w, "FAIL %q should not be a valid %s identifier\n", id, f)
		return false
	case err != nil || rendering == "":
		return true
	}
	got, err := l.Format(other)
	if rendering == noRendering {
		if err == nil {
			fmt.Fprintf(w, "FAIL %q should have no %s form, has %q\n", id, other, got)
			return false
		}
		return true
	}
	if err != nil || got != rendering {
		fmt.Fprintf(w, "FAIL %q as %s: got %q (%v), want %q\n", id, other, got, err, rendering)
		return false
	}
	return true
}
