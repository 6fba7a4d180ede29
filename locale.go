package localeid

import (
	"fmt"
	"io"
	"slices"

	"github.com/npillmayer/localeid/scripts"
)

// Locale is the common representation of a parsed locale identifier.
//
// A Locale is created by ParseGettext or ParseUnicode and is not modified
// afterwards. Absent fields are represented by the empty string.
// Codeset and modifier are Gettext concepts, script and variants are
// Unicode concepts; a Locale carries whichever its source provided.
type Locale struct {
	root      bool
	language  string
	territory string // region
	codeset   string
	modifier  string
	script    string
	variants  []string
}

// IsRoot is true for the Unicode root locale.
func (l *Locale) IsRoot() bool { return l != nil && l.root }

// Language returns the language, if present.
func (l *Locale) Language() string {
	if l == nil {
		return ""
	}
	return l.language
}

// Territory returns the territory (region), if present.
func (l *Locale) Territory() string {
	if l == nil {
		return ""
	}
	return l.territory
}

// Codeset returns the Gettext codeset, if present.
func (l *Locale) Codeset() string {
	if l == nil {
		return ""
	}
	return l.codeset
}

// Modifier returns the Gettext modifier, if present.
func (l *Locale) Modifier() string {
	if l == nil {
		return ""
	}
	return l.modifier
}

// Script returns the Unicode script, if present.
func (l *Locale) Script() string {
	if l == nil {
		return ""
	}
	return l.script
}

// Variants returns a copy of the Unicode variant subtags in their original order.
func (l *Locale) Variants() []string {
	if l == nil {
		return nil
	}
	return slices.Clone(l.variants)
}

// ModifierToScript returns the Unicode script code for a Gettext modifier.
// See package scripts.
func ModifierToScript(modifier string) (string, bool) {
	return scripts.ModifierToScript(modifier)
}

// ScriptToModifier returns the Gettext modifier for a Unicode script code.
// See package scripts.
func ScriptToModifier(script string) (string, bool) {
	return scripts.ScriptToModifier(script)
}

// String returns the Unicode form of l, or its Gettext form if l has no
// Unicode rendering.
func (l *Locale) String() string {
	if id, err := l.Unicode(); err == nil {
		return id
	}
	if id, err := l.Gettext(); err == nil {
		return id
	}
	return "<invalid>"
}

// Dump writes every field of l, followed by both renderings, one per line.
func (l *Locale) Dump(w io.Writer) (err error) {
	if l == nil {
		_, err = fmt.Fprintln(w, "<nil>")
		return
	}
	orNone := func(s string) string {
		if s == "" {
			return "<none>"
		}
		return s
	}
	lines := []struct{ key, value string }{
		{"root", fmt.Sprintf("%v", l.root)},
		{"language", orNone(l.language)},
		{"territory", orNone(l.territory)},
		{"codeset", orNone(l.codeset)},
		{"modifier", orNone(l.modifier)},
		{"script", orNone(l.script)},
	}
	for _, line := range lines {
		if _, err = fmt.Fprintf(w, "%s: %s\n", line.key, line.value); err != nil {
			return
		}
	}
	if len(l.variants) == 0 {
		if _, err = fmt.Fprintln(w, "variants: <none>"); err != nil {
			return
		}
	}
	for i, v := range l.variants {
		if _, err = fmt.Fprintf(w, "variant %d: %s\n", i, v); err != nil {
			return
		}
	}
	gettext, _ := l.Gettext()
	unicode, _ := l.Unicode()
	if _, err = fmt.Fprintf(w, "gettext id: %s\n", orNone(gettext)); err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "unicode id: %s\n", orNone(unicode))
	return
}

// Fallbacks returns the Gettext identifiers a message catalog lookup for l
// should try, most specific first:
//
//	lang_TERR@mod, lang_TERR, lang@mod, lang
//
// The codeset is not part of any fallback. Entries requiring an absent field
// are left out. A locale without language has no fallbacks.
func (l *Locale) Fallbacks() []string {
	if l == nil || l.language == "" {
		return nil
	}
	mod, _ := l.gettextModifier()
	fallbacks := make([]string, 0, 4)
	if l.territory != "" && mod != "" {
		fallbacks = append(fallbacks, l.language+"_"+l.territory+"@"+mod)
	}
	if l.territory != "" {
		fallbacks = append(fallbacks, l.language+"_"+l.territory)
	}
	if mod != "" {
		fallbacks = append(fallbacks, l.language+"@"+mod)
	}
	return append(fallbacks, l.language)
}
