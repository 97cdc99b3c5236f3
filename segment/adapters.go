package segment

import (
	"github.com/yeslogic/corpus/indic"
	"github.com/yeslogic/corpus/myanmar"
)

// IndicMatch adapts indic.Match to MatchFunc.
func IndicMatch(s []rune) (int, any, bool) {
	n, kind, ok := indic.Match(s)
	return n, kind, ok
}

// IndicIsOther adapts indic.IsOther to IsOtherFunc.
func IndicIsOther(cp rune) bool { return indic.IsOther(cp) }

// MyanmarMatch adapts myanmar.Match to MatchFunc.
func MyanmarMatch(s []rune) (int, any, bool) {
	n, kind, ok := myanmar.Match(s)
	return n, kind, ok
}

// MyanmarIsOther reports whether cp should be skipped silently on a failed
// Myanmar match. The Myanmar grammar has no "other" category of its own, so
// this always returns false: a code point that neither forms a cluster nor
// matches the standalone alternative is reported as an Err record.
func MyanmarIsOther(cp rune) bool { return false }
