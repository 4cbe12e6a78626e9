package locale

// Codepoint coverage per script, in the converter's hex range notation.
// See https://unicode.org/charts/ for the block assignments.
var scriptRanges = map[string]string{
	"latin":          "0x20-0x7E",   // Basic Latin
	"latin_extended": "0xA0-0xFF",   // Latin-1 Supplement
	"cyrillic":       "0x0400-0x04FF",
	"greek":          "0x0370-0x03FF",
	"japanese":       "0x3040-0x309F,0x30A0-0x30FF,0x4E00-0x9FFF", // Hiragana, Katakana, common Kanji
	"korean":         "0xAC00-0xD7AF", // Hangul Syllables
	"chinese":        "0x4E00-0x9FFF", // common Han ideographs
	"devanagari":     "0x0900-0x097F",
}

// Symbol and pictograph blocks, included for every locale so that UI
// glyphs (arrows, box drawing, emoji) render everywhere.
const symbolPictographs = "0x2190-0x21FF," + // Arrows
	"0x2300-0x23FF," + // Miscellaneous Technical
	"0x2500-0x257F," + // Box Drawing
	"0x2600-0x26FF," + // Miscellaneous Symbols
	"0x1F000-0x1F02F," + // Mahjong Tiles
	"0x1F0A0-0x1F0FF," + // Playing Cards
	"0x1F100-0x1F1FF," + // Enclosed Alphanumeric Supplement
	"0x1F200-0x1F2FF," + // Enclosed Ideographic Supplement
	"0x1F300-0x1F9FF," + // Miscellaneous Symbols and Pictographs
	"0x1FA00-0x1FA6F," + // Chess Symbols
	"0x1FA70-0x1FAFF" // Symbols and Pictographs Extended-A

// Private Use Area covered by the Nerd Font icon set.
const privateUseArea = "0xE000-0xF8FF"
