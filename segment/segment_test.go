package segment

import (
	"testing"

	"github.com/yeslogic/corpus/indic"
)

func TestNoZeroLengthOkRecord(t *testing.T) {
	s := []rune("hello " + string(rune(0x0915)) + string(rune(0x094D)) + string(rune(0x0937)))
	for _, r := range Segment(s, IndicMatch, IndicIsOther) {
		if r.Kind == Ok && len(r.Span) == 0 {
			t.Fatalf("zero-length Ok record in %q", s)
		}
	}
}

func TestCoverage(t *testing.T) {
	s := []rune{'a', 0x200D, 0x0915, 0x094D, 0x0937, '1'}
	records := Segment(s, IndicMatch, IndicIsOther)
	var covered int
	for _, r := range records {
		covered += len(r.Span)
	}
	// "a" and "1" have no Indic shaping class, so they are not "other": each
	// is reported as its own Err record. Only "other" runes (none here) would
	// be missing from the records' spans.
	want := 0
	for _, cp := range s {
		if !indic.IsOther(cp) {
			want++
		}
	}
	if covered != want {
		t.Fatalf("covered %d runes via records, want %d (input %U)", covered, want, s)
	}
}

func TestDeterminism(t *testing.T) {
	s := []rune{0x0915, 0x094D, 0x0937, 0x200D, 0x0915}
	a := Segment(s, IndicMatch, IndicIsOther)
	b := Segment(s, IndicMatch, IndicIsOther)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic record count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if string(a[i].Span) != string(b[i].Span) || a[i].Kind != b[i].Kind {
			t.Fatalf("non-deterministic record %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestOtherSkippedSilently(t *testing.T) {
	// A bare digit is "other" and produces no record at all, not even an Err.
	s := []rune{0x096B} // Devanagari Digit Five
	records := Segment(s, IndicMatch, IndicIsOther)
	if len(records) != 0 {
		t.Fatalf("Segment(%q) = %+v, want no records", s, records)
	}
}

func TestUnrecognizedEmitsSingleCodepointErr(t *testing.T) {
	// A bare Danda has no Indic shaping class, so it matches no Indic
	// alternative and isn't "other"; it is reported as a length-1 Err.
	s := []rune{0x0964}
	records := Segment(s, IndicMatch, IndicIsOther)
	if len(records) != 1 || records[0].Kind != Err || len(records[0].Span) != 1 {
		t.Fatalf("Segment(%U) = %+v, want one length-1 Err record", s, records)
	}
}

func TestIteratorMatchesSegment(t *testing.T) {
	s := []rune{0x0915, 0x094D, 0x0937, 0x200C, 'z'}
	want := Segment(s, IndicMatch, IndicIsOther)
	it := NewIterator(s, IndicMatch, IndicIsOther)
	var got []Record
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}
	if len(got) != len(want) {
		t.Fatalf("iterator produced %d records, Segment produced %d", len(got), len(want))
	}
	for i := range got {
		if string(got[i].Span) != string(want[i].Span) || got[i].Kind != want[i].Kind {
			t.Fatalf("record %d mismatch: %+v vs %+v", i, got[i], want[i])
		}
	}
}
