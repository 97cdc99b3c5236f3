// Package segment implements the streaming syllable segmenter: a cursor
// driven iterator that repeatedly invokes a syllable grammar's entry point
// over a rune buffer, emitting a record per recognized cluster or
// unrecognized code point.
//
// Ported from yeslogic/corpus's SyllableIter (syllables.rs / myanmar.rs),
// with one deliberate change from the source: on failure this segmenter
// emits only the single unrecognized head code point rather than collecting
// the entire remaining tail, which the source's own iterators conflate.
package segment

// Kind distinguishes a recognized cluster from an unrecognized code point.
type Kind int

const (
	// Ok marks a span the grammar recognized as a cluster.
	Ok Kind = iota
	// Err marks a single code point the grammar could not place in any
	// cluster and that was not silently skipped as "other".
	Err
)

// Record is one emission from the segmenter: the span of runes it covers,
// whether that span was a recognized cluster or an unrecognized code point,
// and — for Ok records — the syllable kind the grammar assigned. Kind is
// the generic grammar's own kind type, stored as an `any` since the Indic
// and Myanmar grammars use distinct kind enumerations.
type Record struct {
	Span []rune
	Kind Kind
	SyllableKind any
}

// MatchFunc is a syllable grammar's entry point: it tries to recognize a
// cluster at the head of s and reports its length, its kind, and whether it
// matched at all.
type MatchFunc func(s []rune) (n int, kind any, ok bool)

// IsOtherFunc reports whether a code point is "other" (a digit or modifying
// letter) and should be skipped silently on a grammar failure instead of
// being reported as an error.
type IsOtherFunc func(cp rune) bool

// Segment drives match over buf from the start, returning every record in
// input order. The returned slice's records, concatenated, cover exactly
// the non-"other" code points of buf; "other" code points between records
// are dropped silently, matching the grammar's own failure policy.
func Segment(buf []rune, match MatchFunc, isOther IsOtherFunc) []Record {
	var records []Record
	i := 0
	for i < len(buf) {
		tail := buf[i:]
		if n, kind, ok := match(tail); ok {
			if n == 0 {
				panic("segment: grammar returned a zero-length match")
			}
			records = append(records, Record{Span: tail[:n], Kind: Ok, SyllableKind: kind})
			i += n
			continue
		}
		if isOther(buf[i]) {
			i++
			continue
		}
		records = append(records, Record{Span: tail[:1], Kind: Err})
		i++
	}
	return records
}

// Iterator is a resumable, non-restartable cursor over buf, for callers
// that want to pull one record at a time instead of collecting the whole
// sequence up front.
type Iterator struct {
	buf     []rune
	i       int
	match   MatchFunc
	isOther IsOtherFunc
}

// NewIterator returns an Iterator positioned at the start of buf.
func NewIterator(buf []rune, match MatchFunc, isOther IsOtherFunc) *Iterator {
	return &Iterator{buf: buf, match: match, isOther: isOther}
}

// Next returns the next record, or ok=false once the buffer is exhausted.
func (it *Iterator) Next() (Record, bool) {
	for it.i < len(it.buf) {
		tail := it.buf[it.i:]
		if n, kind, ok := it.match(tail); ok {
			if n == 0 {
				panic("segment: grammar returned a zero-length match")
			}
			it.i += n
			return Record{Span: tail[:n], Kind: Ok, SyllableKind: kind}, true
		}
		if it.isOther(it.buf[it.i]) {
			it.i++
			continue
		}
		r := Record{Span: tail[:1], Kind: Err}
		it.i++
		return r, true
	}
	return Record{}, false
}
