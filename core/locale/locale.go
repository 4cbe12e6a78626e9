package locale

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/lvfont/core"
	"github.com/npillmayer/lvfont/core/codepoint"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Source font assets. The Unifont family provides near-complete BMP
// coverage, with a dedicated build for upper planes and a CJK-optimized
// build for Japanese. The Nerd Font supplies icon glyphs in the PUA.
const (
	UnifontAsset      = "unifont-16.0.02.otf"
	UnifontUpperAsset = "unifont_upper-16.0.02.otf"
	UnifontJPAsset    = "unifont_jp-16.0.02.otf"
	NerdFontAsset     = "SymbolsNerdFontMono-Regular.ttf"
)

// Profile describes everything the font generator needs to know about a
// locale: which fonts to draw glyphs from and which codepoints to include.
// Profiles are immutable and built once from the static locale table.
type Profile struct {
	Code       string         // locale code, e.g. "de_DE"
	Name       string         // English display name
	Tag        language.Tag   // BCP 47 tag derived from Code
	Scripts    []string       // script table keys this locale draws on
	BaseFont   string         // asset name for BMP glyphs
	UpperFont  string         // asset name for supplementary-plane glyphs
	SymbolFont string         // asset name for PUA icon glyphs
	Low        *codepoint.Set // ranges served by BaseFont
	High       *codepoint.Set // ranges served by UpperFont
	Symbols    *codepoint.Set // ranges served by SymbolFont
}

// SourceFonts returns the asset names of all fonts the profile draws on,
// in the order they are handed to the converter.
func (p *Profile) SourceFonts() []string {
	fonts := []string{p.BaseFont}
	if !p.High.IsEmpty() {
		fonts = append(fonts, p.UpperFont)
	}
	return append(fonts, p.SymbolFont)
}

// The supported locales and the scripts each one requires. Hand-maintained;
// TestProfilesComplete guards the invariants.
var localeScripts = []struct {
	code    string
	scripts []string
}{
	{"cs", []string{"latin", "latin_extended"}},          // Czech
	{"de_DE", []string{"latin", "latin_extended"}},       // German
	{"el", []string{"latin", "greek"}},                   // Greek
	{"en_GB", []string{"latin"}},                         // British English
	{"en_US", []string{"latin"}},                         // US English
	{"en_x_pirate", []string{"latin"}},                   // Pirate English
	{"es", []string{"latin", "latin_extended"}},          // Spanish
	{"fil", []string{"latin"}},                           // Filipino
	{"fr", []string{"latin", "latin_extended"}},          // French
	{"hi", []string{"latin", "devanagari"}},              // Hindi
	{"ID", []string{"latin"}},                            // Indonesian
	{"it_IT", []string{"latin", "latin_extended"}},       // Italian
	{"ja", []string{"latin", "japanese"}},                // Japanese
	{"ko", []string{"latin", "korean"}},                  // Korean
	{"nl", []string{"latin", "latin_extended"}},          // Dutch
	{"pl", []string{"latin", "latin_extended"}},          // Polish
	{"pt_BR", []string{"latin", "latin_extended"}},       // Brazilian Portuguese
	{"ru", []string{"latin", "cyrillic"}},                // Russian
	{"sv", []string{"latin", "latin_extended"}},          // Swedish
	{"tr", []string{"latin", "latin_extended"}},          // Turkish
	{"zh_Latn_pinyin", []string{"latin", "latin_extended"}}, // Pinyin
}

// Display names x/text cannot derive from the tag alone.
var displayNameOverrides = map[string]string{
	"en_x_pirate":    "Pirate English",
	"zh_Latn_pinyin": "Pinyin",
}

var profiles map[string]*Profile
var supportedCodes []string
var codeIndex *trie.Trie

func init() {
	profiles = make(map[string]*Profile, len(localeScripts))
	codeIndex = trie.New()
	for _, entry := range localeScripts {
		p, err := buildProfile(entry.code, entry.scripts)
		if err != nil {
			panic("invalid locale table entry " + entry.code + ": " + err.Error())
		}
		profiles[p.Code] = p
		supportedCodes = append(supportedCodes, p.Code)
		codeIndex.Add(strings.ToLower(p.Code), p.Code)
	}
	sort.Strings(supportedCodes)
}

func buildProfile(code string, scripts []string) (*Profile, error) {
	all := codepoint.NewSet()
	if err := all.AddList(symbolPictographs); err != nil {
		return nil, err
	}
	for _, script := range scripts {
		ranges, ok := scriptRanges[script]
		if !ok {
			return nil, core.Error(core.EMISSING, "unknown script: %s", script)
		}
		if err := all.AddList(ranges); err != nil {
			return nil, err
		}
	}
	low, high := all.SplitAt(codepoint.SupplementaryBoundary)
	symbols, err := codepoint.ParseSet(privateUseArea)
	if err != nil {
		return nil, err
	}
	tag := language.Make(strings.ReplaceAll(code, "_", "-"))
	base := UnifontAsset
	if code == "ja" { // the JP build has CJK glyphs in Japanese style
		base = UnifontJPAsset
	}
	return &Profile{
		Code:       code,
		Name:       displayName(code, tag),
		Tag:        tag,
		Scripts:    scripts,
		BaseFont:   base,
		UpperFont:  UnifontUpperAsset,
		SymbolFont: NerdFontAsset,
		Low:        low,
		High:       high,
		Symbols:    symbols,
	}, nil
}

func displayName(code string, tag language.Tag) string {
	if name, ok := displayNameOverrides[code]; ok {
		return name
	}
	return display.English.Tags().Name(tag)
}

// Supported returns the supported locale codes in sorted order.
func Supported() []string {
	codes := make([]string, len(supportedCodes))
	copy(codes, supportedCodes)
	return codes
}

// Resolve looks up the profile for a locale code. Codes are matched
// exactly; for an unsupported code an EMISSING error is returned, with
// near-miss suggestions included in the user message.
func Resolve(code string) (*Profile, error) {
	if p, ok := profiles[code]; ok {
		tracer().Debugf("resolved locale %s (%s)", p.Code, p.Name)
		return p, nil
	}
	if hints := Suggest(code); len(hints) > 0 {
		return nil, core.Error(core.EMISSING, "unsupported locale %q, did you mean %s?",
			code, strings.Join(hints, ", "))
	}
	return nil, core.Error(core.EMISSING, "unsupported locale %q", code)
}

// Suggest finds supported codes resembling the given one, by shrinking it
// to ever shorter prefixes until the code index matches.
func Suggest(code string) []string {
	prefix := strings.ToLower(strings.TrimSpace(code))
	for len(prefix) > 0 {
		if keys := codeIndex.PrefixSearch(prefix); len(keys) > 0 {
			hints := make([]string, 0, len(keys))
			for _, key := range keys {
				if node, ok := codeIndex.Find(key); ok {
					hints = append(hints, node.Meta().(string))
				}
			}
			sort.Strings(hints)
			return hints
		}
		prefix = prefix[:len(prefix)-1]
	}
	return nil
}
