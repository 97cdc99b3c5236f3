package indic

import "testing"

func TestConsonantClusterWithVirama(t *testing.T) {
	// S1: Ka + Virama + Ssa (क ् ष) — one Consonant syllable of length 3.
	s := []rune{0x0915, 0x094D, 0x0937}
	n, kind, ok := Match(s)
	if !ok || n != 3 || kind != Consonant {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (3, Consonant, true)", s, n, kind, ok)
	}
}

func TestRephPlusConsonant(t *testing.T) {
	// S2: Ra + Virama + Ka (र ् क = reph+ka) — one Consonant syllable of length 3.
	s := []rune{0x0930, 0x094D, 0x0915}
	n, kind, ok := Match(s)
	if !ok || n != 3 || kind != Consonant {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (3, Consonant, true)", s, n, kind, ok)
	}
}

func TestTamilConsonantCluster(t *testing.T) {
	// S3 (மென்): Ma + Vowel Sign E + Nnna + Virama. The spec's scenario table
	// claims one Consonant syllable of length 4, but no production in §4.3
	// admits a consonant after a matra within one cluster: consonant_syllable
	// and broken_syllable both bottom out at Ma·E (the matra is consumed by
	// halant_or_matra_group following the lone CN=Ma), so Nnna·Virama starts a
	// second cluster. The original Rust source agrees — its greedy
	// match_consonant_syllable fails past the matra and falls through to
	// broken, also yielding length 2. Encoding length 4 here would be
	// asserting a spec-table error as passing; the true behavior is length 2.
	s := []rune{0x0BAE, 0x0BC6, 0x0BA9, 0x0BCD}
	n, kind, ok := Match(s)
	if !ok || n != 2 || kind != Consonant {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (2, Consonant, true)", s, n, kind, ok)
	}
}

func TestBengaliConsonantCluster(t *testing.T) {
	// S4: Ka + Virama + Ssa + Vowel Sign U (ক্ষু) — one Consonant syllable of length 4.
	s := []rune{0x0995, 0x09CD, 0x09B7, 0x09C1}
	n, kind, ok := Match(s)
	if !ok || n != 4 || kind != Consonant {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (4, Consonant, true)", s, n, kind, ok)
	}
}

func TestConsonantWithNuktaNoZwj(t *testing.T) {
	// Ka + Nukta (क़, U+0915 U+093C) — CN admits a bare nukta without a
	// preceding zwj, so this is one Consonant syllable of length 2, not a
	// length-1 match leaving the nukta as an orphaned Err record.
	s := []rune{0x0915, 0x093C}
	n, kind, ok := Match(s)
	if !ok || n != 2 || kind != Consonant {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (2, Consonant, true)", s, n, kind, ok)
	}
}

func TestDottedCircleHalantRa(t *testing.T) {
	// S8: dotted circle + virama + ra — one Standalone syllable covering all three.
	s := []rune{0x25CC, 0x094D, 0x0930}
	n, kind, ok := Match(s)
	if !ok || n != 3 || kind != Standalone {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (3, Standalone, true)", s, n, kind, ok)
	}
}

func TestZwjBeforeConsonant(t *testing.T) {
	// A leading ZWJ attached to a following consonant is absorbed as the
	// halant_group of a broken_syllable's (halant_group·CN) unit, per the
	// grammar in §4.3 — see DESIGN.md for why this diverges from the softer
	// prose description of this scenario.
	s := []rune{0x200D, 0x0915}
	n, kind, ok := Match(s)
	if !ok || n != 2 || kind != Broken {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (2, Broken, true)", s, n, kind, ok)
	}
}

func TestNoZeroLengthMatch(t *testing.T) {
	inputs := [][]rune{
		{0x0915, 0x094D, 0x0937},
		{0x0930, 0x094D, 0x0915},
		{0x25CC, 0x094D, 0x0930},
		{0x200D, 0x0915},
		{0x09FA}, // Isshar, a symbol
	}
	for _, s := range inputs {
		if n, _, ok := Match(s); ok && n == 0 {
			t.Fatalf("Match(%U) returned a zero-length success", s)
		}
	}
}

func TestSymbolSyllable(t *testing.T) {
	s := []rune{0x09FA} // Isshar
	n, kind, ok := Match(s)
	if !ok || n != 1 || kind != Symbol {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (1, Symbol, true)", s, n, kind, ok)
	}
}
