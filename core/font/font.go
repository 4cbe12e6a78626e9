/*
Package font loads and inspects the source fonts that glyphs are drawn from.

The font converter does all rasterization and encoding; this package only
parses source fonts far enough to answer coverage questions, i.e. whether
a font actually maps glyphs for the codepoints a locale requires.

----------------------------------------------------------------------

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"sync"

	"github.com/npillmayer/lvfont/core/codepoint"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer traces to tracing key 'lvfont.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("lvfont.fonts")
}

// ScalableFont is a parsed OpenType/TrueType source font.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont reads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses raw OpenType/TrueType data.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// Covers checks whether the font maps a glyph for a codepoint.
func (sf *ScalableFont) Covers(c rune) bool {
	var buf sfnt.Buffer
	gid, err := sf.SFNT.GlyphIndex(&buf, c)
	return err == nil && gid != 0
}

// CoverageGaps sample-checks the font's cmap against a range set and
// returns codepoints without a glyph. Ranges are probed at their ends and
// in the middle rather than exhaustively; CJK ranges span tens of
// thousands of codepoints and an exhaustive check per generation run
// would dominate the runtime.
func (sf *ScalableFont) CoverageGaps(set *codepoint.Set) []rune {
	var gaps []rune
	var buf sfnt.Buffer
	for _, r := range set.Ranges() {
		for _, c := range []rune{r.Lo, r.Lo + rune(r.Len()/2), r.Hi} {
			gid, err := sf.SFNT.GlyphIndex(&buf, c)
			if err != nil || gid == 0 {
				gaps = append(gaps, c)
			}
		}
	}
	return gaps
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches parsed source fonts by their asset name. A batch run
// touches the same few fonts for every locale; the cache exists so that
// the large Unifont builds are parsed once instead of once per locale.
type Registry struct {
	sync.Mutex
	fonts map[string]*ScalableFont
}

var globalFontRegistry *Registry
var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton holding parsed source
// fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*ScalableFont),
	}
}

// Font returns the cached font for an asset name, loading and parsing it
// from path on first use.
func (fr *Registry) Font(asset string, path string) (*ScalableFont, error) {
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[asset]; ok {
		return f, nil
	}
	f, err := LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("registry stores font %s from %s", asset, path)
	fr.fonts[asset] = f
	return f, nil
}

// StoreFont pushes a pre-parsed font into the registry, overriding any
// cached entry for the asset name.
func (fr *Registry) StoreFont(asset string, f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fr.fonts[asset] = f
}
