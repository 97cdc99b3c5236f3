package corpus

import "sort"

// ExtractWords applies UnescapeLine to each line, splits it on any codepoint
// that is neither script-specific-or-shared (per IsScriptChar) nor a Latin
// combining mark, keeps only the words containing at least one
// script-specific codepoint, trims their leading Latin combining marks, and
// returns the case-sensitively deduplicated, sorted result.
//
// Ported from yeslogic/corpus's corpus.rs main(), generalized from a single
// hard-coded script and extended with the escaping step the original left
// to its caller.
func ExtractWords(lines []string, script Script, e Escape) []string {
	set := make(map[string]struct{})
	for _, line := range lines {
		for _, word := range splitWords(UnescapeLine(line, e), script) {
			if !containsScriptSpecificChar(word, script) {
				continue
			}
			set[trimLeadingCombiningMarks(word)] = struct{}{}
		}
	}
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// splitWords breaks s on every codepoint that is not part of script's
// word-splitting alphabet, the same way strings.FieldsFunc would, but with
// Latin combining marks always treated as word characters.
func splitWords(s string, script Script) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	for _, cp := range s {
		if IsScriptChar(script, cp) || isLatinCombiningMark(cp) {
			cur = append(cur, cp)
		} else {
			flush()
		}
	}
	flush()
	return words
}

func containsScriptSpecificChar(word string, script Script) bool {
	for _, cp := range word {
		if IsScriptSpecificChar(script, cp) {
			return true
		}
	}
	return false
}

func trimLeadingCombiningMarks(word string) string {
	r := []rune(word)
	i := 0
	for i < len(r) && isLatinCombiningMark(r[i]) {
		i++
	}
	return string(r[i:])
}
