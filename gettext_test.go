package localeid

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseGettext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "localeid")
	defer teardown()
	//
	tests := []struct {
		id                                     string
		language, territory, codeset, modifier string
	}{
		{id: "it_IT.utf8@euro", language: "it", territory: "IT", codeset: "utf8", modifier: "euro"},
		{id: "it_IT.utf8", language: "it", territory: "IT", codeset: "utf8"},
		{id: "it_IT@euro", language: "it", territory: "IT", modifier: "euro"},
		{id: "it@euro", language: "it", modifier: "euro"},
		{id: "it.utf8", language: "it", codeset: "utf8"},
		{id: "it.utf8@euro", language: "it", codeset: "utf8", modifier: "euro"},
		{id: "it_IT", language: "it", territory: "IT"},
		{id: "it", language: "it"},
		{id: "Latn", language: "Latn"},
		{id: "sr_RS@latin", language: "sr", territory: "RS", modifier: "latin"},
		{id: "C", language: "C"},
	}
	for _, tt := range tests {
		l, err := ParseGettext(tt.id)
		if err != nil {
			t.Fatalf("%q should be a valid gettext identifier: %v", tt.id, err)
		}
		if l.Language() != tt.language || l.Territory() != tt.territory ||
			l.Codeset() != tt.codeset || l.Modifier() != tt.modifier {
			t.Fatalf("%q parsed as %q/%q/%q/%q, want %q/%q/%q/%q", tt.id,
				l.Language(), l.Territory(), l.Codeset(), l.Modifier(),
				tt.language, tt.territory, tt.codeset, tt.modifier)
		}
		if l.IsRoot() || l.Script() != "" || len(l.Variants()) != 0 {
			t.Fatalf("%q: gettext locales never carry root, script or variants", tt.id)
		}
	}
}

func TestParseGettextRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "localeid")
	defer teardown()
	//
	tests := []struct {
		id   string
		want error
	}{
		{id: "", want: ErrInvalidInput},
		{id: " ", want: ErrSubtagShape},
		{id: "  ", want: ErrSubtagShape},
		{id: "it-IT", want: ErrSubtagShape},
		{id: "it_IT.UTF-8", want: ErrSubtagShape},
		{id: "it_IT\x00", want: ErrSubtagShape},
		{id: "foo@bar@baz", want: ErrOrdering},
		{id: "it_IT_FR", want: ErrOrdering},
		{id: "it.utf8_IT", want: ErrOrdering},
		{id: "it@euro_IT", want: ErrOrdering},
		{id: "it@euro.utf8", want: ErrOrdering},
		{id: "it.utf8.latin1", want: ErrOrdering},
		{id: "_IT", want: ErrEmptyChunk},
		{id: "@euro", want: ErrEmptyChunk},
		{id: "it_", want: ErrEmptyChunk},
		{id: "it__IT", want: ErrEmptyChunk},
		{id: "it_IT.@euro", want: ErrEmptyChunk},
	}
	for _, tt := range tests {
		l, err := ParseGettext(tt.id)
		if l != nil {
			t.Fatalf("%q should be rejected, got %v", tt.id, l)
		}
		if !errors.Is(err, tt.want) {
			t.Fatalf("%q: got error %v, want %v", tt.id, err, tt.want)
		}
	}
}

func TestGettextRoundTrip(t *testing.T) {
	for _, id := range []string{
		"it_IT.utf8@euro", "it_IT.utf8", "it_IT@euro", "it@euro",
		"it.utf8", "it_IT", "it", "sr_RS@latin", "ka@georgian",
	} {
		l, err := ParseGettext(id)
		if err != nil {
			t.Fatal(err)
		}
		if got, err := l.Gettext(); err != nil || got != id {
			t.Fatalf("round trip of %q: got %q (%v)", id, got, err)
		}
	}
}

func TestGettextFromUnicode(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "it-Latn-IT", want: "it_IT@latin"},
		{id: "it_Latn", want: "it@latin"},
		{id: "sr-Cyrl-RS", want: "sr_RS@cyrillic"},
		{id: "ka-Geok", want: "ka@georgian"},
		{id: "ka-Geor", want: "ka@georgian"},
		{id: "it-Zzzz-IT", want: "it_IT"},          // unknown script is dropped
		{id: "it-IT-POSIX-NYNORSK", want: "it_IT"}, // variants have no gettext form
		{id: "it-latn", want: "it@latin"},
	}
	for _, tt := range tests {
		l, err := ParseUnicode(tt.id)
		if err != nil {
			t.Fatal(err)
		}
		if got, err := l.Gettext(); err != nil || got != tt.want {
			t.Fatalf("gettext form of %q: got %q (%v), want %q", tt.id, got, err, tt.want)
		}
	}
}

func TestGettextNeedsLanguage(t *testing.T) {
	for _, id := range []string{"root", "root-IT", "Latn", "Latn-IT"} {
		l, err := ParseUnicode(id)
		if err != nil {
			t.Fatal(err)
		}
		if got, err := l.Gettext(); !errors.Is(err, ErrStructure) {
			t.Fatalf("%q has no language, expected ErrStructure, got %q (%v)", id, got, err)
		}
	}
	var l *Locale
	if _, err := l.Gettext(); !errors.Is(err, ErrStructure) {
		t.Fatalf("nil locale: expected ErrStructure, got %v", err)
	}
}
