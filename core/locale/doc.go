/*
Package locale maps application locale codes to font generation profiles.

A profile names the source fonts to draw glyphs from and the Unicode
codepoint ranges the locale's script requires. The supported-locale table
is deliberately kept as explicit static data: its correctness directly
determines which glyphs are available per language, so it should be
readable and testable, not inferred.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package locale

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'lvfont.locale'.
func tracer() tracing.Trace {
	return tracing.Select("lvfont.locale")
}
