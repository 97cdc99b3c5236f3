package indic

import "github.com/yeslogic/corpus/pck"

// Kind identifies which of the five Indic syllable alternatives matched.
type Kind int

const (
	Consonant Kind = iota
	Vowel
	Standalone
	Symbol
	Broken
)

func (k Kind) String() string {
	switch k {
	case Consonant:
		return "Consonant"
	case Vowel:
		return "Vowel"
	case Standalone:
		return "Standalone"
	case Symbol:
		return "Symbol"
	case Broken:
		return "Broken"
	default:
		return "Unknown"
	}
}

func empty(s []rune) (int, bool) { return 0, true }

// repeatMax matches f zero or up to max times back to back with nothing
// required after it, keeping the longest run that succeeds.
func repeatMax(max int, f pck.Matcher) pck.Matcher {
	return pck.RepeatUpto(max, f, empty)
}

var (
	cOne                 = pck.One(func(r rune) bool { return IsConsonant(r) || IsRa(r) })
	zOne                 = pck.One(func(r rune) bool { return IsZwj(r) || IsZwnj(r) })
	nuktaOne             = pck.One(IsNukta)
	halantOne            = pck.One(IsHalant)
	zwjOne               = pck.One(IsZwj)
	zwnjOne              = pck.One(IsZwnj)
	raOne                = pck.One(IsRa)
	rephaOne             = pck.One(IsRepha)
	vowelOne             = pck.One(IsVowelIndependent)
	matraOne             = pck.One(IsMatra)
	symbolOne            = pck.One(IsSymbol)
	placeholderOne       = pck.One(IsPlaceholder)
	dottedCircleOne      = pck.One(IsDottedCircle)
	consonantMedialOne   = pck.One(IsConsonantMedial)
	withStackerOne       = pck.One(IsConsonantWithStacker)
	syllableModifierOne  = pck.One(IsSyllableModifier)
	avagrahaOne          = pck.One(IsAvagraha)
	vedicSignOne         = pck.One(IsVedicSign)

	// reph := (ra · halant) | repha
	reph = pck.EitherOrdered(pck.Seq(raOne, halantOne), rephaOne)

	// zwjNuktaOpt := (zwj · nukta?)?
	zwjNuktaOpt = pck.Optional(pck.Seq(zwjOne, pck.Optional(nuktaOne)))

	// CN := C · zwj? · nukta? (zwj and nukta each independently optional,
	// unlike halant_group's trailing (zwj · nukta?)? where nukta requires
	// a preceding zwj)
	cn = pck.Seq(cOne, pck.Optional(zwjOne), pck.Optional(nuktaOne))

	// forced_rakar := zwj · halant · zwj · ra
	forcedRakar = pck.Seq(zwjOne, halantOne, zwjOne, raOne)

	// S := symbol · nukta?
	symbolAlt = pck.Seq(symbolOne, pck.Optional(nuktaOne))

	// matra_group := Z{0..3} · matra · (nukta · (halant | forced_rakar)?)?
	matraTail  = pck.Seq(matraOne, pck.Optional(pck.Seq(nuktaOne, pck.Optional(pck.EitherOrdered(halantOne, forcedRakar)))))
	matraGroup = pck.RepeatUpto(3, zOne, matraTail)

	// halant_group := Z? · (halant · (zwj · nukta?)?)?
	halantGroup = pck.Seq(pck.Optional(zOne), pck.Optional(pck.Seq(halantOne, zwjNuktaOpt)))

	// halant_or_matra_group := (halant·zwnj) | ((halant·zwj)? · matra_group{0..4}) | halant_group
	halantZwnj          = pck.Seq(halantOne, zwnjOne)
	halantZwjThenMatras = pck.Seq(pck.Optional(pck.Seq(halantOne, zwjOne)), repeatMax(4, matraGroup))
	halantOrMatraGroup  = pck.Either(pck.Either(halantZwnj, halantZwjThenMatras), halantGroup)

	// syllable_tail := (Z? · syllable_modifier · syllable_modifier? · zwnj?)? · avagraha{0..3} · vedic_sign{0..2}
	modifierPart = pck.Optional(pck.Seq(pck.Optional(zOne), syllableModifierOne, pck.Optional(syllableModifierOne), pck.Optional(zwnjOne)))
	syllableTail = pck.Seq(modifierPart, repeatMax(3, avagrahaOne), repeatMax(2, vedicSignOne))

	rephOrStacker = pck.Optional(pck.EitherOrdered(reph, withStackerOne))
	medialGroup   = pck.Optional(consonantMedialOne)

	cnHalantUnit = pck.Seq(cn, halantGroup)
	hgCNUnit     = pck.Seq(halantGroup, cn)

	// tailAfterCN is the medial_group · halant_or_matra_group · syllable_tail
	// suffix shared by the three productions whose repeated unit ends in CN;
	// it is folded in as repeat_upto's "g" term rather than matched greedily
	// afterwards, so a prefix length that would strand the mandatory CN is
	// rejected in favor of a shorter one that leaves room for it.
	tailAfterCN = pck.Seq(medialGroup, halantOrMatraGroup, syllableTail)

	// consonant_syllable := (repha|stacker)? · (CN·halant_group){0..4} · CN · medial_group · halant_or_matra_group · syllable_tail
	consonantSyllable = pck.Seq(rephOrStacker, pck.RepeatUpto(4, cnHalantUnit, pck.Seq(cn, tailAfterCN)))

	// vowel_syllable := reph? · vowel · (nukta? · (zwj | (halant_group·CN){0..4}·medial_group·halant_or_matra_group·syllable_tail))?
	vowelRest     = pck.EitherOrdered(zwjOne, pck.RepeatUpto(4, hgCNUnit, tailAfterCN))
	vowelSyllable = pck.Seq(pck.Optional(reph), vowelOne, pck.Optional(pck.Seq(pck.Optional(nuktaOne), vowelRest)))

	// standalone_syllable := ((repha|stacker)?·placeholder | reph?·dotted_circle) · nukta? · (halant_group·CN){0..4} · medial_group · halant_or_matra_group · syllable_tail
	standaloneHead     = pck.EitherOrdered(pck.Seq(rephOrStacker, placeholderOne), pck.Seq(pck.Optional(reph), dottedCircleOne))
	standaloneSyllable = pck.Seq(standaloneHead, pck.Optional(nuktaOne), pck.RepeatUpto(4, hgCNUnit, tailAfterCN))

	// symbol_syllable := S · syllable_tail
	symbolSyllable = pck.Seq(symbolAlt, syllableTail)

	// broken_syllable := nonempty(reph? · nukta? · (halant_group·CN){0..4} · medial_group · halant_or_matra_group · syllable_tail)
	brokenSyllable = pck.NonEmpty(pck.Seq(pck.Optional(reph), pck.Optional(nuktaOne), pck.RepeatUpto(4, hgCNUnit, tailAfterCN)))
)

// Match tries the five syllable alternatives at the head of s and returns
// the longest one that succeeds; on a tie it prefers, in order, Consonant,
// Vowel, Standalone, Symbol, Broken. It returns ok=false if none match — a
// successful match always consumes at least one rune.
func Match(s []rune) (n int, kind Kind, ok bool) {
	type candidate struct {
		kind Kind
		m    pck.Matcher
	}
	candidates := []candidate{
		{Consonant, consonantSyllable},
		{Vowel, vowelSyllable},
		{Standalone, standaloneSyllable},
		{Symbol, symbolSyllable},
		{Broken, brokenSyllable},
	}
	best, bestOK := 0, false
	bestKind := Broken
	for _, c := range candidates {
		if cn, cok := c.m(s); cok && (!bestOK || cn > best) {
			best, bestOK, bestKind = cn, true, c.kind
		}
	}
	return best, bestKind, bestOK
}
