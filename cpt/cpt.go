// Package cpt implements the character property table: a total function from
// Unicode scalar values to a shaping class and mark-placement subclass.
//
// Ported from yeslogic/corpus (Rust); HarfBuzz equivalent: the per-codepoint
// tables backing hb-ot-shaper-indic-table.cc and hb-ot-shaper-myanmar.cc.
package cpt

// IndicShapingClass is the shaping class of a codepoint under the Indic
// grammar (Devanagari, Bengali, Gurmukhi, Gujarati, Oriya, Tamil, Telugu,
// Kannada, Malayalam, Sinhala, plus Vedic and Grantha extensions).
type IndicShapingClass uint8

const (
	// None is the zero value: the codepoint carries no Indic shaping class.
	None IndicShapingClass = iota
	Bindu
	Visarga
	Avagraha
	Nukta
	Virama
	Cantillation
	GeminationMark
	PureKiller
	SyllableModifier
	Consonant
	VowelIndependent
	VowelDependent
	ConsonantDead
	ConsonantMedial
	ConsonantPlaceholder
	ConsonantWithStacker
	ConsonantPreRepha
	ModifyingLetter
	Placeholder
	Number
	Symbol
	Joiner
	NonJoiner
	DottedCircle
)

// MyanmarShapingClass is the shaping class of a codepoint under the Myanmar
// grammar. It is a smaller, disjoint vocabulary from IndicShapingClass even
// though several members share a name and a meaning.
type MyanmarShapingClass uint8

const (
	MyanmarNone MyanmarShapingClass = iota
	MyanmarBindu
	MyanmarVisarga
	MyanmarPureKiller
	MyanmarConsonant
	MyanmarVowelIndependent
	MyanmarVowelDependent
	MyanmarConsonantMedial
	MyanmarConsonantPlaceholder
	MyanmarNumber
	MyanmarSymbol
	MyanmarToneMarker
	MyanmarInvisibleStacker
	MyanmarConsonantWithStacker
	MyanmarPlaceholder
	MyanmarJoiner
	MyanmarNonJoiner
	MyanmarDottedCircle
)

// MarkPlacement is the visual side(s) of a base on which a combining mark
// renders. It is irrelevant (NoPlacement) for any codepoint that is not a
// combining mark.
type MarkPlacement uint8

const (
	NoPlacement MarkPlacement = iota
	TopPosition
	RightPosition
	BottomPosition
	LeftPosition
	LeftAndRightPosition
	TopAndRightPosition
	TopAndLeftPosition
	TopLeftAndRightPosition
	TopAndBottomPosition
	TopLeftAndBottomPosition
	Overstruck
)

// IndicProperty is the pair the Indic CPT associates with a codepoint.
type IndicProperty struct {
	Shaping IndicShapingClass
	Mark    MarkPlacement
}

// MyanmarProperty is the pair the Myanmar CPT associates with a codepoint.
type MyanmarProperty struct {
	Shaping MyanmarShapingClass
	Mark    MarkPlacement
}

// Indic returns the shaping class and mark-placement subclass of cp under
// the Indic grammar. The function is total: codepoints outside the tabulated
// ranges, and reserved codepoints within them, both return the zero Property.
func Indic(cp rune) IndicProperty {
	shaping, mark := indicLookup(cp)
	return IndicProperty{shaping, mark}
}

// Myanmar returns the shaping class and mark-placement subclass of cp under
// the Myanmar grammar. Total, per the same contract as [Indic].
func Myanmar(cp rune) MyanmarProperty {
	shaping, mark := myanmarLookup(cp)
	return MyanmarProperty{shaping, mark}
}
