// Package pck implements the parser combinator kernel: a minimal algebra of
// matchers over a slice of runes, each returning a consumed length or "no
// match". Matchers are pure — they never mutate the slice they are given —
// and allocate nothing; composition happens entirely through returned
// lengths.
//
// Ported from yeslogic/corpus (Rust), where the same kernel appears twice
// with two different `either` semantics: syllables.rs uses ordered/priority
// either for the Indic grammar, myanmar.rs uses longest-match either for the
// Myanmar grammar. Both are kept here as distinct combinators; they are not
// interchangeable.
package pck

// Matcher tries to consume a prefix of s, reporting how many runes it
// consumed and whether it matched at all.
type Matcher func(s []rune) (n int, ok bool)

// One succeeds with length 1 if s is non-empty and pred holds of its head.
func One(pred func(r rune) bool) Matcher {
	return func(s []rune) (int, bool) {
		if len(s) == 0 || !pred(s[0]) {
			return 0, false
		}
		return 1, true
	}
}

// Optional runs m; on failure it succeeds with length 0 instead.
func Optional(m Matcher) Matcher {
	return func(s []rune) (int, bool) {
		if n, ok := m(s); ok {
			return n, true
		}
		return 0, true
	}
}

// Seq runs each matcher in turn against the remainder left by the previous
// one, succeeding with the total length if every matcher succeeds.
func Seq(ms ...Matcher) Matcher {
	return func(s []rune) (int, bool) {
		total := 0
		for _, m := range ms {
			n, ok := m(s[total:])
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true
	}
}

// Either runs both m1 and m2 and returns the longer successful length,
// preferring m2 on a tie. It fails only if both fail. This is the
// longest-match variant the Myanmar grammar uses throughout.
func Either(m1, m2 Matcher) Matcher {
	return func(s []rune) (int, bool) {
		n1, ok1 := m1(s)
		n2, ok2 := m2(s)
		switch {
		case ok1 && ok2:
			if n1 > n2 {
				return n1, true
			}
			return n2, true
		case ok1:
			return n1, true
		case ok2:
			return n2, true
		default:
			return 0, false
		}
	}
}

// EitherOrdered returns m1's length if m1 matches, else m2's. This is the
// priority variant the Indic grammar uses internally, where rule order
// disambiguates overlapping alternatives.
func EitherOrdered(m1, m2 Matcher) Matcher {
	return func(s []rune) (int, bool) {
		if n, ok := m1(s); ok {
			return n, true
		}
		return m2(s)
	}
}

// OptionalSeq is either(g, seq(f, g)) under either's longest-match
// semantics: f is optional, but when present it must be followed by g.
func OptionalSeq(f, g Matcher) Matcher {
	return Either(g, Seq(f, g))
}

// RepeatUpto tries 0..=max repetitions of f followed by g, and returns the
// longest total among the repetition counts that succeed. It is not
// greedy-then-validate: every prefix length from 0 to max is tried, and the
// best successful one wins, because a shorter run of f can sometimes be the
// only one that lets g match at all.
func RepeatUpto(max int, f, g Matcher) Matcher {
	return func(s []rune) (int, bool) {
		best, found := 0, false
		prefix := 0
		for count := 0; count <= max; count++ {
			if n, ok := g(s[prefix:]); ok {
				total := prefix + n
				if !found || total > best {
					best, found = total, true
				}
			}
			if count == max {
				break
			}
			n, ok := f(s[prefix:])
			if !ok {
				break
			}
			if n == 0 {
				break
			}
			prefix += n
		}
		return best, found
	}
}

// RepeatNum matches exactly n back-to-back repetitions of f, failing if any
// one of them fails.
func RepeatNum(n int, f Matcher) Matcher {
	return func(s []rune) (int, bool) {
		total := 0
		for i := 0; i < n; i++ {
			m, ok := f(s[total:])
			if !ok {
				return 0, false
			}
			total += m
		}
		return total, true
	}
}

// NonEmpty succeeds with m's result only if m matched a non-zero length.
func NonEmpty(m Matcher) Matcher {
	return func(s []rune) (int, bool) {
		n, ok := m(s)
		if !ok || n == 0 {
			return 0, false
		}
		return n, true
	}
}
