/*
Package gen drives the external font converter.

The converter (lv_font_conv, the LVGL font tooling) does the actual glyph
subsetting, rasterization and binary encoding. This package resolves a
locale to its fonts and codepoint ranges, constructs the converter's
command line, runs it as a subprocess and moves the resulting binary font
to the requested output path.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package gen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'lvfont.gen'.
func tracer() tracing.Trace {
	return tracing.Select("lvfont.gen")
}
