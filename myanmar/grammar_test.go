package myanmar

import "testing"

func TestMedialRaWaVowelCluster(t *testing.T) {
	// S5: Ka + Medial Ra + Medial Wa + Vowel Sign E — one Consonant syllable
	// of length 4 (no kinzi/stacker; Med = mr·mw; Vmain = matra_pre).
	s := []rune{0x1000, 0x103C, 0x103D, 0x1031}
	n, kind, ok := Match(s)
	if !ok || n != 4 || kind != Consonant {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (4, Consonant, true)", s, n, kind, ok)
	}
}

func TestKinziPlusKa(t *testing.T) {
	// S6: Nga + Asat + Virama (kinzi) + Ka — one Consonant syllable of length 4.
	s := []rune{0x1004, 0x103A, 0x1039, 0x1000}
	n, kind, ok := Match(s)
	if !ok || n != 4 || kind != Consonant {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (4, Consonant, true)", s, n, kind, ok)
	}
}

func TestStandaloneFallback(t *testing.T) {
	// A reserved codepoint within Myanmar Extended-B with no tabulated
	// shaping class matches only as a standalone/broken single-codepoint
	// cluster.
	s := []rune{0xA9FF}
	n, kind, ok := Match(s)
	if !ok || n != 1 || kind != Broken {
		t.Fatalf("Match(%U) = (%d, %v, %v), want (1, Broken, true)", s, n, kind, ok)
	}
}

func TestNoZeroLengthMatch(t *testing.T) {
	inputs := [][]rune{
		{0x1000, 0x103C, 0x103D, 0x1031},
		{0x1004, 0x103A, 0x1039, 0x1000},
		{0xA9FF},
	}
	for _, s := range inputs {
		if n, _, ok := Match(s); ok && n == 0 {
			t.Fatalf("Match(%U) returned a zero-length success", s)
		}
	}
}

func TestClusterCap(t *testing.T) {
	// A pathological run of combining marks must never produce a match
	// longer than MaxClusterLen.
	s := make([]rune, 0, 64)
	s = append(s, 0x1000) // base consonant
	for i := 0; i < 60; i++ {
		s = append(s, 0x103A) // asat, repeated
	}
	n, _, ok := Match(s)
	if ok && n > MaxClusterLen {
		t.Fatalf("Match returned length %d, exceeding MaxClusterLen=%d", n, MaxClusterLen)
	}
}
