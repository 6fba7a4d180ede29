package localeid

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Tag converts l to a golang.org/x/text/language tag, for use with the
// x/text matching and display packages. The root locale maps to language.Und.
// x/text validates subtags against the IANA registry, so Tag may reject
// locales which are well-formed by this package's grammar.
func (l *Locale) Tag() (language.Tag, error) {
	id, err := l.Unicode()
	if err != nil {
		return language.Und, err
	}
	if l.root {
		id = "und" + strings.TrimPrefix(id, rootSubtag)
	}
	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("localeid: %q is not a valid BCP 47 tag: %w", id, err)
	}
	return tag, nil
}
