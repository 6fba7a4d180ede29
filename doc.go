/*
Package localeid parses and converts locale identifiers between two textual
conventions: the POSIX/Gettext form

	language[_territory][.codeset][@modifier]

and the Unicode language identifier form, an ordered sequence of subtags
separated by '-' or '_'

	language[_script][_region][_variant]*   |   script[_region][_variant]*   |   root[_region][_variant]*

Both parsers produce a Locale. A Locale may be rendered into either form
again. Gettext modifiers and Unicode scripts are translated into each other
through a fixed table (see package scripts), e.g.

	it@latin  <=>  it_Latn

Parsing is strictly syntactical. There is no likely-subtag inference and no
canonicalization beyond what the grammar implies.

Further Reading

	https://www.gnu.org/software/gettext/manual/html_node/Locale-Names.html
	http://unicode.org/reports/tr35/#Unicode_language_identifier

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package localeid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'localeid'
func tracer() tracing.Trace {
	return tracing.Select("localeid")
}
