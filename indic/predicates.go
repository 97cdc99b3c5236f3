// Package indic implements the Indic syllable grammar: predicates built on
// the character property table plus the declarative grammar that composes
// them with the parser combinator kernel to recognize orthographic syllable
// clusters across the Devanagari, Bengali, Gurmukhi, Gujarati, Oriya, Tamil,
// Telugu, Kannada, Malayalam and Sinhala scripts (plus Vedic and Grantha
// extensions).
//
// Ported from yeslogic/corpus's syllables.rs.
package indic

import "github.com/yeslogic/corpus/cpt"

// ra is the fixed, script-specific set of codepoints classified as "ra"
// regardless of which script's block they fall in.
var ra = map[rune]bool{
	0x0930: true, // Devanagari Ra
	0x09B0: true, // Bengali Ra
	0x09F0: true, // Bengali Ra With Middle Diagonal
	0x0A30: true, // Gurmukhi Ra
	0x0AB0: true, // Gujarati Ra
	0x0B30: true, // Oriya Ra
	0x0BB0: true, // Tamil Ra
	0x0C30: true, // Telugu Ra
	0x0CB0: true, // Kannada Ra
	0x0D30: true, // Malayalam Ra
	0x0DBB: true, // Sinhala Ra
}

func shaping(cp rune) cpt.IndicShapingClass { return cpt.Indic(cp).Shaping }

// IsRa reports whether cp is one of the script-specific Ra consonants.
func IsRa(cp rune) bool { return ra[cp] }

// IsConsonant reports whether cp is a consonant other than Ra; the grammar
// treats Ra separately (C := consonant ∨ ra).
func IsConsonant(cp rune) bool { return shaping(cp) == cpt.Consonant && !ra[cp] }

// IsVowelIndependent reports whether cp is an independent vowel letter.
func IsVowelIndependent(cp rune) bool { return shaping(cp) == cpt.VowelIndependent }

// IsVowelDependent reports whether cp is a dependent vowel sign (matra).
func IsVowelDependent(cp rune) bool { return shaping(cp) == cpt.VowelDependent }

// IsMatra is an alias for IsVowelDependent; the grammar's matra_group
// consumes dependent vowel signs.
func IsMatra(cp rune) bool { return IsVowelDependent(cp) }

// IsNukta reports whether cp is a nukta (consonant-modifying diacritic).
func IsNukta(cp rune) bool { return shaping(cp) == cpt.Nukta }

// IsHalant reports whether cp is a virama/halant sign.
func IsHalant(cp rune) bool { return shaping(cp) == cpt.Virama }

// IsZwj reports whether cp is the zero-width joiner.
func IsZwj(cp rune) bool { return shaping(cp) == cpt.Joiner }

// IsZwnj reports whether cp is the zero-width non-joiner.
func IsZwnj(cp rune) bool { return shaping(cp) == cpt.NonJoiner }

// IsCantillation reports whether cp is a Vedic cantillation/tone mark.
func IsCantillation(cp rune) bool { return shaping(cp) == cpt.Cantillation }

// IsAvagraha reports whether cp is an avagraha or related Vedic sign tabulated
// under the same shaping class.
func IsAvagraha(cp rune) bool { return shaping(cp) == cpt.Avagraha }

// IsVedicSign reports whether cp is a Vedic sign consumed by the syllable
// tail (cantillation or avagraha-class marks).
func IsVedicSign(cp rune) bool {
	c := shaping(cp)
	return c == cpt.Cantillation || c == cpt.Avagraha
}

// IsSymbol reports whether cp is a standalone symbol (e.g. rupee signs,
// Isshar, the Tamil calendrical and accounting signs).
func IsSymbol(cp rune) bool { return shaping(cp) == cpt.Symbol }

// IsPlaceholder reports whether cp is a consonant placeholder used in
// standalone syllables (NBSP, dashes and the like).
func IsPlaceholder(cp rune) bool { return shaping(cp) == cpt.Placeholder }

// IsDottedCircle reports whether cp is U+25CC, the dotted-circle placeholder
// for otherwise-unattached combining marks.
func IsDottedCircle(cp rune) bool { return shaping(cp) == cpt.DottedCircle }

// IsRepha reports whether cp is a precomposed repha sign (distinct from the
// ra+halant sequence that also forms a repha).
func IsRepha(cp rune) bool { return shaping(cp) == cpt.ConsonantPreRepha }

// IsConsonantMedial reports whether cp is a consonant medial (subjoined
// consonant form, e.g. Khmer-style medials adopted in some Indic scripts).
func IsConsonantMedial(cp rune) bool { return shaping(cp) == cpt.ConsonantMedial }

// IsConsonantWithStacker reports whether cp is a consonant that carries its
// own below-base stacking behavior (Jihvamuliya, Upadhmaniya).
func IsConsonantWithStacker(cp rune) bool { return shaping(cp) == cpt.ConsonantWithStacker }

// IsSyllableModifier reports whether cp is a syllable-final modifier sign
// (anusvara-like bindu/visarga/gemination/pure-killer signs).
func IsSyllableModifier(cp rune) bool {
	switch shaping(cp) {
	case cpt.Bindu, cpt.Visarga, cpt.GeminationMark, cpt.PureKiller, cpt.SyllableModifier:
		return true
	}
	return false
}

// IsOther reports whether cp is a character the grammar never claims: a
// digit or a modifying letter. The streaming segmenter skips these silently
// instead of reporting them as unrecognized.
func IsOther(cp rune) bool {
	c := shaping(cp)
	return c == cpt.Number || c == cpt.ModifyingLetter
}
