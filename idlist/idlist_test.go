package idlist

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/localeid"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`# installed locales
C
it_IT.utf8

  sr_RS@latin   # Serbian, Latin script
#de_DE
`)
	r := NewReader(src)
	want := []struct {
		id   string
		line int
	}{
		{id: "C", line: 2},
		{id: "it_IT.utf8", line: 3},
		{id: "sr_RS@latin", line: 5},
	}
	for _, w := range want {
		id, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if id != w.id || r.Line() != w.line {
			t.Fatalf("got %q at line %d, want %q at line %d", id, r.Line(), w.id, w.line)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestConvertAllFromReader(t *testing.T) {
	src := strings.NewReader("it_IT.utf8@euro\nsr_RS@cyrillic\nit-IT\n")
	conversions, err := localeid.ConvertAll(NewReader(src), localeid.FormatGettext, localeid.FormatUnicode)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"it_IT", "sr_Cyrl_RS", ""}
	for i, c := range conversions {
		if c.Result != want[i] {
			t.Fatalf("conversion of %q: got %q, want %q", c.Source, c.Result, want[i])
		}
	}
	if !errors.Is(conversions[2].Err, localeid.ErrSubtagShape) {
		t.Fatalf("it-IT should be rejected as gettext identifier, got %v", conversions[2].Err)
	}
}
