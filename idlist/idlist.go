/*
Package idlist reads lists of locale identifiers, one per line, as printed
by `locale -a` or kept in configuration files.

Leading and trailing white space is ignored, as are empty lines and lines
starting with '#'. A trailing comment ("de_DE   # German") is stripped.
*/
package idlist

import (
	"bufio"
	"io"
	"strings"
)

// Reader streams locale identifiers from a line-oriented source.
// It satisfies localeid.IdentifierReader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the line number of the identifier most recently returned by Next.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next identifier.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
