package localeid

import (
	"fmt"
	"strings"

	"github.com/npillmayer/localeid/scripts"
)

// ParseGettext parses a locale identifier in Gettext format:
//
//	language[_territory][.codeset][@modifier]
//
// The language is mandatory, the other fields are optional but have to appear
// in this order and at most once. Fields consist of ASCII letters and digits.
//
// Example:
//
//	"it_IT.utf8@euro" => language=it, territory=IT, codeset=utf8, modifier=euro
func ParseGettext(id string) (*Locale, error) {
	if id == "" {
		return nil, reject(id, ErrInvalidInput, "missing language")
	}
	l := &Locale{}
	var sep byte // boundary preceding the current chunk; 0 for the language
	start := 0
	for i := 0; i <= len(id); i++ {
		atEnd := i == len(id)
		if !atEnd {
			c := id[i]
			if c != '_' && c != '.' && c != '@' {
				if !isAlnum(c) {
					return nil, reject(id, ErrSubtagShape, "invalid character %q at position %d", c, i)
				}
				continue
			}
		}
		chunk := id[start:i]
		if chunk == "" {
			if sep == 0 {
				return nil, reject(id, ErrEmptyChunk, "empty language")
			}
			return nil, reject(id, ErrEmptyChunk, "nothing follows %q at position %d", sep, start-1)
		}
		switch sep {
		case 0:
			l.language = chunk
		case '_':
			if l.territory != "" || l.codeset != "" || l.modifier != "" {
				return nil, reject(id, ErrOrdering, "territory %q", chunk)
			}
			l.territory = chunk
		case '.':
			if l.codeset != "" || l.modifier != "" {
				return nil, reject(id, ErrOrdering, "codeset %q", chunk)
			}
			l.codeset = chunk
		case '@':
			if l.modifier != "" {
				return nil, reject(id, ErrOrdering, "modifier %q", chunk)
			}
			l.modifier = chunk
		}
		if !atEnd {
			sep = id[i]
		}
		start = i + 1
	}
	return l, nil
}

// Gettext returns l in Gettext format. If l has no modifier but a script,
// the script is translated to a modifier if the script table knows it.
// It is an error if l has no language, which is the case for Unicode root
// locales and for identifiers starting with a script.
func (l *Locale) Gettext() (string, error) {
	if l == nil || l.language == "" {
		return "", fmt.Errorf("%w: gettext identifier needs a language", ErrStructure)
	}
	var b strings.Builder
	b.WriteString(l.language)
	if l.territory != "" {
		b.WriteByte('_')
		b.WriteString(l.territory)
	}
	if l.codeset != "" {
		b.WriteByte('.')
		b.WriteString(l.codeset)
	}
	if mod, ok := l.gettextModifier(); ok {
		b.WriteByte('@')
		b.WriteString(mod)
	}
	return b.String(), nil
}

// gettextModifier is the modifier as given, or else the modifier derived from
// the script.
func (l *Locale) gettextModifier() (string, bool) {
	if l.modifier != "" {
		return l.modifier, true
	}
	if l.script != "" {
		return scripts.ScriptToModifier(l.script)
	}
	return "", false
}

// reject wraps a sentinel error with details about id and traces it.
func reject(id string, err error, format string, args ...any) error {
	e := fmt.Errorf("%w: %q: %s", err, id, fmt.Sprintf(format, args...))
	tracer().Debugf("rejected: %v", e)
	return e
}
