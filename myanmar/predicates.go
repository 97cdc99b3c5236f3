// Package myanmar implements the Myanmar syllable grammar: predicates built
// on the character property table plus the declarative grammar that
// composes them with the parser combinator kernel to recognize orthographic
// syllable clusters across the Myanmar block and its two extensions.
//
// Ported from yeslogic/corpus's myanmar.rs.
package myanmar

import "github.com/yeslogic/corpus/cpt"

// MaxClusterLen is the hard upper bound, in code points, on any one Myanmar
// cluster: "a practical maximum cluster length is 31 characters."
const MaxClusterLen = 31

// MaxRepeat bounds any Kleene-star inside the grammar to prevent pathological
// expansion on adversarial input, while still honoring MaxClusterLen.
const MaxRepeat = MaxClusterLen / 3

func shaping(cp rune) cpt.MyanmarShapingClass { return cpt.Myanmar(cp).Shaping }
func mark(cp rune) cpt.MarkPlacement          { return cpt.Myanmar(cp).Mark }

var genericBase = map[rune]bool{
	0x002D: true, 0x00A0: true, 0x00D7: true,
	0x2012: true, 0x2013: true, 0x2014: true, 0x2015: true,
	0x2022: true, 0x25CC: true,
	0x25FB: true, 0x25FC: true, 0x25FD: true, 0x25FE: true,
}

var raSet = map[rune]bool{0x101B: true, 0x1004: true, 0x105A: true}

// IsConsonant reports whether cp is a base consonant or consonant
// placeholder. The IsRa codepoints (Ra, Nga, Mon Nga) are tabulated as
// consonants and are included, so the initial group and the halant group
// accept them without a separate Ra alternative.
func IsConsonant(cp rune) bool {
	c := shaping(cp)
	return c == cpt.MyanmarConsonant || c == cpt.MyanmarConsonantPlaceholder
}

// IsVowel reports whether cp is an independent vowel letter.
func IsVowel(cp rune) bool { return shaping(cp) == cpt.MyanmarVowelIndependent }

// IsDigit reports whether cp is a Myanmar digit.
func IsDigit(cp rune) bool { return shaping(cp) == cpt.MyanmarNumber }

// IsGenericBase reports whether cp is one of the script-common characters
// (hyphen, NBSP, bullet, dotted circle, etc.) that take a single Myanmar
// cluster on their own.
func IsGenericBase(cp rune) bool { return genericBase[cp] }

// IsStandalone reports whether cp forms a simple non-compounding cluster on
// its own: a reserved or unclassified Myanmar-block codepoint, or one
// explicitly tabulated as a placeholder.
func IsStandalone(cp rune) bool {
	inBlock := (cp >= 0x1000 && cp <= 0x109F) || (cp >= 0xAA60 && cp <= 0xAA7F) || (cp >= 0xA9E0 && cp <= 0xA9FF)
	if !inBlock {
		return false
	}
	c := shaping(cp)
	return c == cpt.MyanmarNone || c == cpt.MyanmarPlaceholder
}

// IsVariationSelector reports whether cp is U+FE00.
func IsVariationSelector(cp rune) bool { return cp == 0xFE00 }

// IsHalant reports whether cp is the invisible stacker (virama).
func IsHalant(cp rune) bool { return shaping(cp) == cpt.MyanmarInvisibleStacker }

// IsZwj reports whether cp is the zero-width joiner.
func IsZwj(cp rune) bool { return shaping(cp) == cpt.MyanmarJoiner }

// IsZwnj reports whether cp is the zero-width non-joiner.
func IsZwnj(cp rune) bool { return shaping(cp) == cpt.MyanmarNonJoiner }

// IsJoiner reports whether cp is either joiner.
func IsJoiner(cp rune) bool { return IsZwj(cp) || IsZwnj(cp) }

// IsRa reports whether cp is Ra, Nga, or Mon Nga — the three codepoints the
// Myanmar grammar treats as "ra" for kinzi formation.
func IsRa(cp rune) bool { return raSet[cp] }

// IsAsat reports whether cp is U+103A, the asat sign.
func IsAsat(cp rune) bool { return cp == 0x103A }

// IsConsonantWithStacker reports whether cp carries its own below-base
// stacking behavior.
func IsConsonantWithStacker(cp rune) bool { return shaping(cp) == cpt.MyanmarConsonantWithStacker }

// IsMatraPre reports whether cp is a pre-base dependent vowel sign.
func IsMatraPre(cp rune) bool {
	return shaping(cp) == cpt.MyanmarVowelDependent && mark(cp) == cpt.LeftPosition
}

// IsMatraPost reports whether cp is a post-base dependent vowel sign.
func IsMatraPost(cp rune) bool {
	return shaping(cp) == cpt.MyanmarVowelDependent && mark(cp) == cpt.RightPosition
}

// IsA reports whether cp is Anusvara or Sign Ai. Sign Ai is deliberately
// classified here rather than as matra_above, to implement orthographically
// correct reordering behavior.
func IsA(cp rune) bool { return cp == 0x1036 || cp == 0x1032 }

// IsDotBelow reports whether cp is U+1037.
func IsDotBelow(cp rune) bool { return cp == 0x1037 }

// IsMatraAbove reports whether cp is a top-position dependent vowel sign
// other than one of the IsA codepoints.
func IsMatraAbove(cp rune) bool {
	return !IsA(cp) && shaping(cp) == cpt.MyanmarVowelDependent && mark(cp) == cpt.TopPosition
}

// IsMatraBelow reports whether cp is a bottom-position dependent vowel sign.
func IsMatraBelow(cp rune) bool {
	return shaping(cp) == cpt.MyanmarVowelDependent && mark(cp) == cpt.BottomPosition
}

// IsMedialHa reports whether cp is Medial Ha (U+103E).
func IsMedialHa(cp rune) bool { return cp == 0x103E }

// IsMedialLa reports whether cp is Mon Medial La (U+1060).
func IsMedialLa(cp rune) bool { return cp == 0x1060 }

// IsMedialRa reports whether cp is Medial Ra (U+103C).
func IsMedialRa(cp rune) bool { return cp == 0x103C }

// IsMedialWa reports whether cp is Medial Wa or Shan Medial Wa.
func IsMedialWa(cp rune) bool { return cp == 0x103D || cp == 0x1082 }

// IsMedialYa reports whether cp is Medial Ya, Mon Medial Na, or Mon Medial Ma.
func IsMedialYa(cp rune) bool { return cp == 0x103B || cp == 0x105E || cp == 0x105F }

// IsPt reports whether cp is one of the Karen tone markers.
func IsPt(cp rune) bool {
	switch {
	case cp == 0x1063 || cp == 0x1064:
		return true
	case cp >= 0x1069 && cp <= 0x106D:
		return true
	case cp == 0xAA7B:
		return true
	}
	return false
}

// IsPunc reports whether cp is Little Section or Section (U+104A/U+104B).
func IsPunc(cp rune) bool { return cp == 0x104A || cp == 0x104B }

// IsVisarga reports whether cp is tabulated with the Visarga shaping class.
func IsVisarga(cp rune) bool { return shaping(cp) == cpt.MyanmarVisarga }

// IsSm reports whether cp is one of the Shan/Rumai Palaung/Khamti stress
// marks, or Visarga.
func IsSm(cp rune) bool {
	switch {
	case cp >= 0x1087 && cp <= 0x108D:
		return true
	case cp == 0x108F:
		return true
	case cp >= 0x109A && cp <= 0x109C:
		return true
	case IsVisarga(cp):
		return true
	}
	return false
}
