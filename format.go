package localeid

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects one of the two identifier conventions.
type Format int

const (
	FormatGettext Format = iota // language[_territory][.codeset][@modifier]
	FormatUnicode               // language[_script][_region][_variant]*
)

func (f Format) String() string {
	switch f {
	case FormatGettext:
		return "gettext"
	case FormatUnicode:
		return "unicode"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format named name ("gettext", "posix", "unicode",
// "bcp47"; case is ignored).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "gettext", "posix":
		return FormatGettext, nil
	case "unicode", "bcp47":
		return FormatUnicode, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Parse parses id in format f.
func Parse(f Format, id string) (*Locale, error) {
	switch f {
	case FormatGettext:
		return ParseGettext(id)
	case FormatUnicode:
		return ParseUnicode(id)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Format renders l in format f.
func (l *Locale) Format(f Format) (string, error) {
	switch f {
	case FormatGettext:
		return l.Gettext()
	case FormatUnicode:
		return l.Unicode()
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Convert parses id in format from and renders it in format to.
//
// Example:
//
//	Convert("it@latin", FormatGettext, FormatUnicode) => "it_Latn"
func Convert(id string, from, to Format) (string, error) {
	l, err := Parse(from, id)
	if err != nil {
		return "", err
	}
	return l.Format(to)
}

// IdentifierReader yields locale identifiers one-by-one.
// It should return io.EOF when the stream is exhausted.
type IdentifierReader interface {
	Next() (string, error)
}

// Conversion is the outcome of converting a single identifier.
type Conversion struct {
	Source string // identifier as read
	Result string // converted identifier, empty if Err != nil
	Err    error
}

// ConvertAll converts every identifier delivered by reader. Identifiers which
// fail to convert are reported in their Conversion; an error of the reader
// stops the conversion and is returned together with the conversions so far.
func ConvertAll(reader IdentifierReader, from, to Format) ([]Conversion, error) {
	var conversions []Conversion
	failed := 0
	for {
		id, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return conversions, err
		}
		result, err := Convert(id, from, to)
		if err != nil {
			failed++
		}
		conversions = append(conversions, Conversion{Source: id, Result: result, Err: err})
	}
	tracer().Infof("converted %d identifiers from %v to %v, %d failed",
		len(conversions), from, to, failed)
	return conversions, nil
}
