package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/localeid"
	"github.com/npillmayer/localeid/idlist"
	"github.com/spf13/cobra"
)

// argsReader serves identifiers given on the command line.
type argsReader struct {
	args []string
}

func (r *argsReader) Next() (string, error) {
	if len(r.args) == 0 {
		return "", io.EOF
	}
	id := r.args[0]
	r.args = r.args[1:]
	return id, nil
}

func newConvertCommand() *cobra.Command {
	var from, to, file string
	cmd := &cobra.Command{
		Use:   "convert [id...]",
		Short: "Convert identifiers from one format to the other",
		Long: `Convert parses every identifier in the source format and prints it in the
target format, one per line. Identifiers are taken from the arguments or,
with --file, from a file with one identifier per line ("-" reads stdin).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromFormat, err := localeid.ParseFormat(from)
			if err != nil {
				return err
			}
			toFormat, err := localeid.ParseFormat(to)
			if err != nil {
				return err
			}
			var reader localeid.IdentifierReader = &argsReader{args: args}
			if file != "" {
				in, closer, err := openInput(cmd, file)
				if err != nil {
					return err
				}
				defer closer()
				reader = idlist.NewReader(in)
			}
			conversions, err := localeid.ConvertAll(reader, fromFormat, toFormat)
			if err != nil {
				return err
			}
			failed := 0
			for _, c := range conversions {
				if c.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", c.Source, c.Err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.Result)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d identifiers could not be converted", failed, len(conversions))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "gettext", "source format (gettext, unicode)")
	cmd.Flags().StringVar(&to, "to", "unicode", "target format (gettext, unicode)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read identifiers from file, - for stdin")
	return cmd
}

func openInput(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
