// Command corpus reads lines from standard input, extracts script-specific
// words (optionally un-escaping JSON or HTML entities first), and prints the
// sorted, deduplicated result.
//
// Ported from yeslogic/corpus's corpus.rs main(), extended with the
// SCRIPT/ESCAPE argument pair the original hard-coded at compile time.
package main

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/yeslogic/corpus/corpus"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: corpus SCRIPT ESCAPE")
		os.Exit(1)
	}
	script, ok := corpus.ParseScript(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown script: %s\n", os.Args[1])
		os.Exit(1)
	}
	escape, ok := corpus.ParseEscape(os.Args[2])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown escape: %s\n", os.Args[2])
		os.Exit(1)
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			line = ""
		}
		lines = append(lines, line)
	}

	for _, word := range corpus.ExtractWords(lines, script, escape) {
		fmt.Println(word)
	}
}
