package localeid

import (
	"errors"
	"io"
	"testing"
)

type sliceIdentifierReader struct {
	entries []string
	index   int
	err     error // returned instead of io.EOF when set
}

func (r *sliceIdentifierReader) Next() (string, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{name: "gettext", want: FormatGettext},
		{name: "POSIX", want: FormatGettext},
		{name: "Unicode", want: FormatUnicode},
		{name: "bcp47", want: FormatUnicode},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.name)
		if err != nil || f != tt.want {
			t.Fatalf("ParseFormat(%q): got %v (%v), want %v", tt.name, f, err, tt.want)
		}
	}
	if _, err := ParseFormat("java"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if FormatUnicode.String() != "unicode" || Format(7).String() != "Format(7)" {
		t.Fatalf("unexpected format names %q, %q", FormatUnicode, Format(7))
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		id       string
		from, to Format
		want     string
	}{
		{id: "it@latin", from: FormatGettext, to: FormatUnicode, want: "it_Latn"},
		{id: "it-Latn-IT", from: FormatUnicode, to: FormatGettext, want: "it_IT@latin"},
		{id: "root-IT", from: FormatUnicode, to: FormatUnicode, want: "root_IT"},
		{id: "it_IT.utf8@euro", from: FormatGettext, to: FormatGettext, want: "it_IT.utf8@euro"},
	}
	for _, tt := range tests {
		if got, err := Convert(tt.id, tt.from, tt.to); err != nil || got != tt.want {
			t.Fatalf("Convert(%q, %v, %v): got %q (%v), want %q", tt.id, tt.from, tt.to, got, err, tt.want)
		}
	}
	if _, err := Convert("root-Latn", FormatUnicode, FormatGettext); !errors.Is(err, ErrSubtagShape) {
		t.Fatalf("expected ErrSubtagShape, got %v", err)
	}
	if _, err := Convert("root", FormatUnicode, FormatGettext); !errors.Is(err, ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
	if _, err := Convert("it", Format(9), FormatGettext); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	l, _ := ParseGettext("it")
	if _, err := l.Format(Format(9)); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestConvertAll(t *testing.T) {
	reader := &sliceIdentifierReader{entries: []string{"it_IT", "sr_RS@latin", "it-IT", "de_DE.utf8"}}
	conversions, err := ConvertAll(reader, FormatGettext, FormatUnicode)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"it_IT", "sr_Latn_RS", "", "de_DE"}
	if len(conversions) != len(want) {
		t.Fatalf("expected %d conversions, got %d", len(want), len(conversions))
	}
	for i, c := range conversions {
		if c.Result != want[i] {
			t.Fatalf("conversion %d of %q: got %q, want %q", i, c.Source, c.Result, want[i])
		}
	}
	if !errors.Is(conversions[2].Err, ErrSubtagShape) {
		t.Fatalf("it-IT is no gettext identifier, got error %v", conversions[2].Err)
	}
}

func TestConvertAllReaderError(t *testing.T) {
	broken := errors.New("broken pipe")
	reader := &sliceIdentifierReader{entries: []string{"it"}, err: broken}
	conversions, err := ConvertAll(reader, FormatGettext, FormatUnicode)
	if !errors.Is(err, broken) {
		t.Fatalf("expected reader error, got %v", err)
	}
	if len(conversions) != 1 || conversions[0].Result != "it" {
		t.Fatalf("expected the conversion before the error, got %v", conversions)
	}
}
