package myanmar

import "github.com/yeslogic/corpus/pck"

// Kind identifies which of the two Myanmar syllable outcomes matched.
type Kind int

const (
	Consonant Kind = iota
	Broken
)

func (k Kind) String() string {
	if k == Consonant {
		return "Consonant"
	}
	return "Broken"
}

var (
	consonantOne          = pck.One(IsConsonant)
	vowelOne               = pck.One(IsVowel)
	digitOne               = pck.One(IsDigit)
	genericBaseOne         = pck.One(IsGenericBase)
	standaloneOne          = pck.One(IsStandalone)
	variationSelectorOne   = pck.One(IsVariationSelector)
	halantOne              = pck.One(IsHalant)
	raOne                  = pck.One(IsRa)
	asatOne                = pck.One(IsAsat)
	consonantWithStacker   = pck.One(IsConsonantWithStacker)
	matraPreOne            = pck.One(IsMatraPre)
	matraPostOne           = pck.One(IsMatraPost)
	aOne                   = pck.One(IsA)
	dotBelowOne            = pck.One(IsDotBelow)
	matraAboveOne          = pck.One(IsMatraAbove)
	matraBelowOne          = pck.One(IsMatraBelow)
	medialHaOne            = pck.One(IsMedialHa)
	medialLaOne            = pck.One(IsMedialLa)
	medialRaOne            = pck.One(IsMedialRa)
	medialWaOne            = pck.One(IsMedialWa)
	medialYaOne            = pck.One(IsMedialYa)
	ptOne                  = pck.One(IsPt)
	puncOne                = pck.One(IsPunc)
	smOne                  = pck.One(IsSm)
	joinerOne              = pck.One(IsJoiner)

	// kinzi := ra · asat · halant
	kinzi = pck.Seq(raOne, asatOne, halantOne)

	// z := joiner
	z = joinerOne

	// dotBelowAsatOpt := (dot_below · asat?)?
	dotBelowAsatOpt = pck.Optional(pck.Seq(dotBelowOne, pck.Optional(asatOne)))

	// vmain := matra_pre{0..MAX_REPEAT} · matra_above{0..4} · matra_below{0..4} · a{0..4} · (dot_below · asat?)?
	vmain = pck.RepeatUpto(MaxRepeat, matraPreOne,
		pck.RepeatUpto(4, matraAboveOne,
			pck.RepeatUpto(4, matraBelowOne,
				pck.RepeatUpto(4, aOne, dotBelowAsatOpt))))

	// vpost := matra_post · mh{0..4} · asat{0..4} · matra_above{0..4} · a{0..4} · (dot_below · asat?)?
	vpost = pck.Seq(matraPostOne,
		pck.RepeatUpto(4, pck.Optional(medialHaOne),
			pck.RepeatUpto(4, asatOne,
				pck.RepeatUpto(4, matraAboveOne,
					pck.RepeatUpto(4, aOne, dotBelowAsatOpt)))))

	// pwo := pt · (a · (dot_below? · asat?)){0..MAX_REPEAT}
	pwo = pck.Seq(ptOne,
		pck.RepeatUpto(MaxRepeat, aOne, pck.Seq(pck.Optional(dotBelowOne), pck.Optional(asatOne))))

	// medial_group2a := mw · mh? · ml?
	medialGroup2a = pck.Seq(medialWaOne, pck.OptionalSeq(medialHaOne, pck.Optional(medialLaOne)))

	// medial_group2b := mh · ml?
	medialGroup2b = pck.Seq(medialHaOne, pck.Optional(medialLaOne))

	// medial_group2 := (medial_group2a | medial_group2b | ml) · asat?
	medialGroup2 = pck.Seq(pck.Either(medialGroup2a, pck.Either(medialGroup2b, medialLaOne)), pck.Optional(asatOne))

	// medial_group := my? · asat? · mr? · medial_group2?
	medialGroup = pck.OptionalSeq(medialYaOne, pck.OptionalSeq(asatOne, pck.OptionalSeq(medialRaOne, pck.Optional(medialGroup2))))

	// t_complex := asat{0..MAX_REPEAT} · Med · Vmain · Vpost{0..MAX_REPEAT} · Pwo{0..MAX_REPEAT} · sm{0..MAX_REPEAT} · Z?
	tComplex = pck.RepeatUpto(MaxRepeat, asatOne,
		pck.Seq(medialGroup,
			pck.Seq(vmain,
				pck.RepeatUpto(MaxRepeat, vpost,
					pck.RepeatUpto(MaxRepeat, pwo,
						pck.RepeatUpto(MaxRepeat, smOne, pck.Optional(z)))))))

	// syllable_tail := halant | t_complex
	syllableTail = pck.Either(halantOne, tComplex)

	// halant_group := halant · (consonant | vowel) · vs?
	halantGroup = pck.Seq(halantOne, pck.Either(consonantOne, vowelOne), pck.Optional(variationSelectorOne))

	// g := gb | digit | punc
	gAlt = pck.Either(genericBaseOne, pck.Either(digitOne, puncOne))

	// initial_group := consonant | vowel | g
	initialGroup = pck.Either(consonantOne, pck.Either(vowelOne, gAlt))

	// consonant_syllable := (kinzi | cs)? · initial_group · vs? · (halant_group){0..MAX_REPEAT} · tail
	consonantSyllable = pck.OptionalSeq(
		pck.Either(kinzi, consonantWithStacker),
		pck.Seq(initialGroup, pck.OptionalSeq(variationSelectorOne, pck.RepeatUpto(MaxRepeat, halantGroup, syllableTail))),
	)
)

// Match tries the consonant-syllable grammar first and, if it fails, falls
// back to a single standalone/reserved codepoint. Because the initial_group
// inside consonant_syllable always consumes at least one code point, this
// ordered trial is equivalent to the longest-wins either used everywhere
// else in this grammar: consonant_syllable's length is never shorter than
// standalone's length-1 alternative at the same position.
func Match(s []rune) (n int, kind Kind, ok bool) {
	if n, ok := consonantSyllable(s); ok {
		return n, Consonant, true
	}
	if n, ok := standaloneOne(s); ok {
		return n, Broken, true
	}
	return 0, Broken, false
}
