/*
Command localeid parses and converts locale identifiers from the command line.

	localeid convert --from gettext --to unicode sr_RS@latin   # sr_Latn_RS
	locale -a | localeid convert --file -
	localeid dump it-Latn-IT-NYNORSK
	localeid check [cases.yaml]
	localeid scripts --prefix old
	localeid env
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'localeid.cmd'
func tracer() tracing.Trace {
	return tracing.Select("localeid.cmd")
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var traceLevel string
	root := &cobra.Command{
		Use:          "localeid",
		Short:        "Parse and convert Gettext and Unicode locale identifiers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setTraceLevel(traceLevel)
		},
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "error", "trace level (error, info, debug)")
	root.AddCommand(
		newConvertCommand(),
		newDumpCommand(),
		newCheckCommand(),
		newScriptsCommand(),
		newEnvCommand(),
	)
	return root
}

func setTraceLevel(name string) error {
	var level tracing.TraceLevel
	switch strings.ToLower(name) {
	case "error":
		level = tracing.LevelError
	case "info":
		level = tracing.LevelInfo
	case "debug":
		level = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", name)
	}
	for _, key := range []string{"localeid", "localeid.scripts", "localeid.cmd"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}
