// Command myanmar-syllables reads lines from standard input, segments each
// into Myanmar orthographic syllable clusters, and reports distinct
// successes and distinct unrecognized spans. Same interface as the syllables
// command, backed by the Myanmar grammar table instead of the Indic one.
//
// Ported from yeslogic/corpus's myanmar.rs main().
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yeslogic/corpus/cpt"
	"github.com/yeslogic/corpus/segment"
)

func main() {
	good := make(map[string]struct{})
	bad := make(map[string]string)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			line = ""
		}
		runes := []rune(line)
		for _, rec := range segment.Segment(runes, segment.MyanmarMatch, segment.MyanmarIsOther) {
			s := string(rec.Span)
			switch rec.Kind {
			case segment.Ok:
				good[s] = struct{}{}
			case segment.Err:
				bad[s] = line
			}
		}
	}

	successes := sortedKeys(good)
	for _, s := range successes {
		fmt.Println(s)
	}

	type failure struct{ span, line string }
	failures := make([]failure, 0, len(bad))
	for span, line := range bad {
		failures = append(failures, failure{span, line})
	}
	sort.Slice(failures, func(i, j int) bool {
		if failures[i].span != failures[j].span {
			return failures[i].span < failures[j].span
		}
		return failures[i].line < failures[j].line
	})
	for _, f := range failures {
		fmt.Printf("bad: %q %s in line: %s\n", f.span, friendly(f.span), friendly(f.line))
	}
}

// friendly renders s as a space-separated list of per-character labels
// ("[Ka]", "[U+0041]") using the character-name table.
func friendly(s string) string {
	labels := make([]string, 0, len(s))
	for _, cp := range s {
		labels = append(labels, "["+cpt.Name(cp)+"]")
	}
	return strings.Join(labels, " ")
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
