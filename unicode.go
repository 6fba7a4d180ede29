package localeid

import (
	"fmt"
	"strings"

	"github.com/npillmayer/localeid/scripts"
)

// rootSubtag denotes the locale-neutral Unicode root locale. It is matched
// case-sensitively.
const rootSubtag = "root"

// ParseUnicode parses a Unicode language identifier. Subtags are separated
// by '-' or '_' and are classified by position and shape:
//
//	root | language [script] | script
//	    followed by [region] [variant...]
//
//	language  alpha{2,3}
//	script    alpha{4}
//	region    alpha{2} | digit{3}
//	variant   alnum{5,8} | digit alnum{3}
//
// Example:
//
//	"it-Latn-IT-NYNORSK" => language=it, script=Latn, territory=IT, variants=[NYNORSK]
func ParseUnicode(id string) (*Locale, error) {
	if id == "" {
		return nil, reject(id, ErrInvalidInput, "no subtags")
	}
	subtags, err := splitSubtags(id)
	if err != nil {
		return nil, err
	}
	l := &Locale{}
	next := 0
	if subtags[0] == rootSubtag {
		l.root = true
		next = 1
	} else {
		if isLanguageSubtag(subtags[0]) {
			l.language = subtags[0]
			next = 1
		}
		if next < len(subtags) && isScriptSubtag(subtags[next]) {
			l.script = subtags[next]
			next++
		} else if next == 0 {
			return nil, reject(id, ErrSubtagShape, "%q is neither a language nor a script", subtags[0])
		}
	}
	if next < len(subtags) && isRegionSubtag(subtags[next]) {
		l.territory = subtags[next]
		next++
	}
	if next < len(subtags) {
		l.variants = make([]string, 0, len(subtags)-next)
	}
	for _, subtag := range subtags[next:] {
		if !isVariantSubtag(subtag) {
			return nil, reject(id, ErrSubtagShape, "%q is not a valid variant", subtag)
		}
		l.variants = append(l.variants, subtag)
	}
	return l, nil
}

// splitSubtags splits id at '-' and '_'. Every subtag has to be a non-empty
// sequence of ASCII letters and digits.
func splitSubtags(id string) ([]string, error) {
	subtags := make([]string, 0, 1+len(id)/2)
	start := 0
	for i := 0; i <= len(id); i++ {
		if i < len(id) && id[i] != '-' && id[i] != '_' {
			if !isAlnum(id[i]) {
				return nil, reject(id, ErrSubtagShape, "invalid character %q at position %d", id[i], i)
			}
			continue
		}
		if i == start {
			return nil, reject(id, ErrEmptyChunk, "empty subtag at position %d", i)
		}
		subtags = append(subtags, id[start:i])
		start = i + 1
	}
	return subtags, nil
}

func isLanguageSubtag(s string) bool {
	return (len(s) == 2 || len(s) == 3) && isAlphaString(s)
}

func isScriptSubtag(s string) bool {
	return len(s) == 4 && isAlphaString(s)
}

func isRegionSubtag(s string) bool {
	switch len(s) {
	case 2:
		return isAlphaString(s)
	case 3:
		return isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2])
	}
	return false
}

func isVariantSubtag(s string) bool {
	switch len(s) {
	case 5, 6, 7, 8:
		return isAlnumString(s)
	case 4:
		return isDigit(s[0]) && isAlnumString(s[1:])
	}
	return false
}

// Unicode returns l as a Unicode language identifier, using '_' as the
// separator. If l has no script but a Gettext modifier, the modifier is
// translated to a script if the script table knows it.
// It is an error if l has neither root, a language nor a script.
func (l *Locale) Unicode() (string, error) {
	if l == nil {
		return "", fmt.Errorf("%w: no locale", ErrStructure)
	}
	script := l.script
	if script == "" && l.modifier != "" {
		script, _ = scripts.ModifierToScript(l.modifier)
	}
	var b strings.Builder
	switch {
	case l.root:
		b.WriteString(rootSubtag)
	case l.language != "":
		b.WriteString(l.language)
		if script != "" {
			b.WriteByte('_')
			b.WriteString(script)
		}
	case script != "":
		b.WriteString(script)
	default:
		return "", fmt.Errorf("%w: unicode identifier needs root, a language or a script", ErrStructure)
	}
	if l.territory != "" {
		b.WriteByte('_')
		b.WriteString(l.territory)
	}
	for _, v := range l.variants {
		b.WriteByte('_')
		b.WriteString(v)
	}
	return b.String(), nil
}
