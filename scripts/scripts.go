/*
Package scripts associates Gettext locale modifiers with Unicode script codes.

Gettext identifiers name a writing system with a free-form modifier
("sr_RS@latin"), Unicode identifiers use a four-letter ISO 15924 code
("sr_Latn_RS"). This package holds a fixed table of such pairs and looks
them up case-insensitively in either direction.

The table is not a bijection: "georgian" is paired with both Geok and Geor.
Lookups return the first matching pair, therefore

	ModifierToScript("georgian") == "Geok"
	ScriptToModifier("Geok")     == "georgian"
	ScriptToModifier("Geor")     == "georgian"

The table is immutable and safe for concurrent use.
*/
package scripts

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'localeid.scripts'
func tracer() tracing.Trace {
	return tracing.Select("localeid.scripts")
}

// Pair is one table entry.
type Pair struct {
	Modifier string // Gettext modifier, e.g. "latin"
	Script   string // ISO 15924 script code, e.g. "Latn"
}

// Pairs returns a copy of the table in lookup order.
func Pairs() []Pair {
	pp := make([]Pair, len(table))
	copy(pp, table[:])
	return pp
}

// ModifierToScript returns the script code for a Gettext modifier name.
func ModifierToScript(modifier string) (string, bool) {
	i, ok := index().byModifier.lookup(modifier)
	if !ok {
		return "", false
	}
	return table[i].Script, true
}

// ScriptToModifier returns the Gettext modifier name for a script code.
func ScriptToModifier(script string) (string, bool) {
	i, ok := index().byScript.lookup(script)
	if !ok {
		return "", false
	}
	return table[i].Modifier, true
}

// ModifiersWithPrefix returns the modifier names starting with prefix,
// ignoring case, in lexicographical order.
func ModifiersWithPrefix(prefix string) []string {
	return index().byModifier.withPrefix(prefix)
}
