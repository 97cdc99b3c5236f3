package pck

import "testing"

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }

func TestOne(t *testing.T) {
	m := One(isDigit)
	if n, ok := m([]rune("1a")); !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
	if _, ok := m([]rune("a1")); ok {
		t.Fatal("expected no match on non-digit head")
	}
	if _, ok := m(nil); ok {
		t.Fatal("expected no match on empty slice")
	}
}

func TestOptional(t *testing.T) {
	m := Optional(One(isDigit))
	if n, ok := m([]rune("a")); !ok || n != 0 {
		t.Fatalf("got (%d, %v), want (0, true)", n, ok)
	}
	if n, ok := m([]rune("1")); !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
}

func TestSeq(t *testing.T) {
	m := Seq(One(isDigit), One(isLetter))
	if n, ok := m([]rune("1a")); !ok || n != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", n, ok)
	}
	if _, ok := m([]rune("11")); ok {
		t.Fatal("expected no match when second matcher fails")
	}
	if _, ok := m([]rune("1")); ok {
		t.Fatal("expected no match when input is too short")
	}
}

func TestEitherLongestMatch(t *testing.T) {
	short := One(isDigit)
	long := Seq(One(isDigit), One(isDigit))
	m := Either(short, long)
	if n, ok := m([]rune("12a")); !ok || n != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", n, ok)
	}
	// tie: prefer m2
	tie := Either(One(isDigit), One(isDigit))
	if n, ok := tie([]rune("1")); !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
	if _, ok := m([]rune("a")); ok {
		t.Fatal("expected no match when both fail")
	}
}

func TestEitherOrderedPriority(t *testing.T) {
	long := Seq(One(isDigit), One(isDigit))
	short := One(isDigit)
	m := EitherOrdered(short, long)
	// m1 (short) matches first and wins even though m2 would consume more
	if n, ok := m([]rune("12")); !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
	m2 := EitherOrdered(One(isLetter), One(isDigit))
	if n, ok := m2([]rune("1")); !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
}

func TestOptionalSeq(t *testing.T) {
	m := OptionalSeq(One(isDigit), One(isLetter))
	if n, ok := m([]rune("a")); !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true) for bare g", n, ok)
	}
	if n, ok := m([]rune("1a")); !ok || n != 2 {
		t.Fatalf("got (%d, %v), want (2, true) for f+g", n, ok)
	}
	if _, ok := m([]rune("1")); ok {
		t.Fatal("expected no match when f present but g absent")
	}
}

func TestRepeatUptoPicksLongest(t *testing.T) {
	// f = digit, g = letter; "111a" should consume all three digits then the letter.
	m := RepeatUpto(4, One(isDigit), One(isLetter))
	if n, ok := m([]rune("111a")); !ok || n != 4 {
		t.Fatalf("got (%d, %v), want (4, true)", n, ok)
	}
}

func TestRepeatUptoNotGreedy(t *testing.T) {
	// g needs an 'x' followed by a digit; greedy consumption of all three 'x'
	// as f would strand g. repeat_upto must fall back to a shorter prefix of f
	// (two 'x') so g can still match.
	isL := func(r rune) bool { return r == 'x' }
	m := RepeatUpto(3, One(isL), Seq(One(isL), One(isDigit)))
	if n, ok := m([]rune("xxx1")); !ok || n != 4 {
		t.Fatalf("got (%d, %v), want (4, true)", n, ok)
	}
	// no prefix length lets g match
	if _, ok := m([]rune("xxxx")); ok {
		t.Fatal("expected no match when g never succeeds at any prefix")
	}
}

func TestRepeatUptoZero(t *testing.T) {
	m := RepeatUpto(0, One(isDigit), One(isLetter))
	if n, ok := m([]rune("a")); !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
	if _, ok := m([]rune("1a")); ok {
		t.Fatal("expected no match: max=0 forbids consuming the leading digit")
	}
}

func TestRepeatNum(t *testing.T) {
	m := RepeatNum(3, One(isDigit))
	if n, ok := m([]rune("123a")); !ok || n != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", n, ok)
	}
	if _, ok := m([]rune("12a")); ok {
		t.Fatal("expected no match: third repetition fails")
	}
	if n, ok := RepeatNum(0, One(isDigit))([]rune("a")); !ok || n != 0 {
		t.Fatalf("got (%d, %v), want (0, true) for zero repetitions", n, ok)
	}
}

func TestNonEmpty(t *testing.T) {
	m := NonEmpty(Optional(One(isDigit)))
	if _, ok := m([]rune("a")); ok {
		t.Fatal("expected no match: underlying matcher succeeded with zero length")
	}
	if n, ok := m([]rune("1")); !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
}
