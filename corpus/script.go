// Package corpus implements the corpus-extraction filter: JSON/HTML
// unescaping, script-specific word splitting, and deduplication over
// arbitrarily escaped line-oriented text, on top of the character property
// table's script ranges.
//
// Ported from yeslogic/corpus's corpus.rs, extended with a Myanmar script
// (corpus.rs predates the Myanmar grammar) and with the escaping glue that
// the original left to its callers.
package corpus

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Script identifies one of the eleven scripts the extractor understands.
type Script int

const (
	Devanagari Script = iota
	Bengali
	Tamil
	Telugu
	Gujarati
	Gurmukhi
	Oriya
	Malayalam
	Myanmar
	Kannada
	Sinhala
)

func (s Script) String() string {
	switch s {
	case Devanagari:
		return "Devanagari"
	case Bengali:
		return "Bengali"
	case Tamil:
		return "Tamil"
	case Telugu:
		return "Telugu"
	case Gujarati:
		return "Gujarati"
	case Gurmukhi:
		return "Gurmukhi"
	case Oriya:
		return "Oriya"
	case Malayalam:
		return "Malayalam"
	case Myanmar:
		return "Myanmar"
	case Kannada:
		return "Kannada"
	case Sinhala:
		return "Sinhala"
	default:
		return fmt.Sprintf("Script(%d)", int(s))
	}
}

// ParseScript maps a two-letter CLI script code to a Script.
func ParseScript(s string) (Script, bool) {
	switch s {
	case "hi":
		return Devanagari, true
	case "bn":
		return Bengali, true
	case "ta":
		return Tamil, true
	case "te":
		return Telugu, true
	case "gu":
		return Gujarati, true
	case "pa":
		return Gurmukhi, true
	case "or":
		return Oriya, true
	case "ml":
		return Malayalam, true
	case "my":
		return Myanmar, true
	case "kn":
		return Kannada, true
	case "si":
		return Sinhala, true
	default:
		return 0, false
	}
}

// blockTable builds a single-range *unicode.RangeTable covering [lo, hi].
func blockTable(lo, hi rune) *unicode.RangeTable {
	if hi <= 0xFFFF {
		return &unicode.RangeTable{
			R16:         []unicode.Range16{{Lo: uint16(lo), Hi: uint16(hi), Stride: 1}},
			LatinOffset: 0,
		}
	}
	return &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}},
	}
}

// Per-script base ranges: the codepoints that are specific to that script
// and that alone make a containing word "interesting" for extraction.
var (
	devanagariTable = rangetable.Merge(blockTable(0x0900, 0x097F), blockTable(0xA8E0, 0xA8FF))
	bengaliTable    = blockTable(0x0980, 0x09FF)
	gujaratiTable   = blockTable(0x0A80, 0x0AFF)
	gurmukhiTable   = blockTable(0x0A00, 0x0A7F)
	kannadaTable    = blockTable(0x0C80, 0x0CFF)
	malayalamTable  = blockTable(0x0D00, 0x0D7F)
	oriyaTable      = blockTable(0x0B00, 0x0B7F)
	// Sinhala's range follows the spec's U+0D80..U+0DF4, not the
	// wider U+0D70..U+0DFF block the original source used.
	sinhalaTable = blockTable(0x0D80, 0x0DF4)
	tamilTable   = blockTable(0x0B80, 0x0BFF)
	teluguTable  = blockTable(0x0C00, 0x0C7F)
	myanmarTable = rangetable.Merge(blockTable(0x1000, 0x109F), blockTable(0xAA60, 0xAA7F), blockTable(0xA9E0, 0xA9FF))

	// Shared ranges layered on top of the per-script base range to decide
	// whether a codepoint belongs to a script's word-splitting alphabet
	// (but never by itself makes a word "script-specific").
	granthaMarksTable = rangetable.New(0x11301, 0x11303, 0x1133C)
	// Vedic Extensions' upper bound follows the spec's U+1CD0..U+1CF9, not
	// the wider U+1CD0..U+1CFF block the original source used.
	vedicExtensionsTable    = blockTable(0x1CD0, 0x1CF9)
	devanagariAnudattaTable = rangetable.New(0x0951, 0x0952)
	miscTable               = rangetable.New(0x0951, 0x0952, 0x200C, 0x200D, 0x25CC)
)

// IsScriptChar reports whether cp belongs to script's word-splitting
// alphabet: its own script-specific range plus the shared Vedic, Grantha,
// anudatta, and miscellaneous (ZWJ/ZWNJ/dotted-circle) ranges that scripts
// sharing a writing tradition commonly mix in. Myanmar is the exception: its
// alphabet is its own range alone, with no shared ranges added.
func IsScriptChar(script Script, cp rune) bool {
	switch script {
	case Devanagari:
		return unicode.Is(devanagariTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(miscTable, cp)
	case Bengali:
		return unicode.Is(bengaliTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(devanagariAnudattaTable, cp) || unicode.Is(miscTable, cp)
	case Tamil:
		return unicode.Is(tamilTable, cp) || unicode.Is(granthaMarksTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(devanagariAnudattaTable, cp) || unicode.Is(miscTable, cp)
	case Telugu:
		return unicode.Is(teluguTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(devanagariAnudattaTable, cp) || unicode.Is(miscTable, cp)
	case Gujarati:
		return unicode.Is(gujaratiTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(devanagariAnudattaTable, cp) || unicode.Is(miscTable, cp)
	case Gurmukhi:
		return unicode.Is(gurmukhiTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(devanagariAnudattaTable, cp) || unicode.Is(miscTable, cp)
	case Oriya:
		return unicode.Is(oriyaTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(devanagariAnudattaTable, cp) || unicode.Is(miscTable, cp)
	case Malayalam:
		return unicode.Is(malayalamTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(devanagariAnudattaTable, cp) || unicode.Is(miscTable, cp)
	case Kannada:
		return unicode.Is(kannadaTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(devanagariAnudattaTable, cp) || unicode.Is(miscTable, cp)
	case Sinhala:
		return unicode.Is(sinhalaTable, cp) || unicode.Is(vedicExtensionsTable, cp) || unicode.Is(miscTable, cp)
	case Myanmar:
		return unicode.Is(myanmarTable, cp)
	default:
		return false
	}
}

// IsScriptSpecificChar reports whether cp is in script's own base range,
// as opposed to one of the shared ranges layered on top of it in
// IsScriptChar. A word must contain at least one such codepoint to survive
// extraction.
func IsScriptSpecificChar(script Script, cp rune) bool {
	switch script {
	case Devanagari:
		return unicode.Is(devanagariTable, cp)
	case Bengali:
		return unicode.Is(bengaliTable, cp)
	case Tamil:
		return unicode.Is(tamilTable, cp)
	case Telugu:
		return unicode.Is(teluguTable, cp)
	case Gujarati:
		return unicode.Is(gujaratiTable, cp)
	case Gurmukhi:
		return unicode.Is(gurmukhiTable, cp)
	case Oriya:
		return unicode.Is(oriyaTable, cp)
	case Malayalam:
		return unicode.Is(malayalamTable, cp)
	case Kannada:
		return unicode.Is(kannadaTable, cp)
	case Sinhala:
		return unicode.Is(sinhalaTable, cp)
	case Myanmar:
		return unicode.Is(myanmarTable, cp)
	default:
		return false
	}
}

// isLatinCombiningMark reports whether cp is one of the Latin combining
// diacritics (U+0300..U+036F) that word-splitting treats as part of a word
// rather than as a separator, even though they are never script-specific.
func isLatinCombiningMark(cp rune) bool { return cp >= 0x0300 && cp <= 0x036F }
