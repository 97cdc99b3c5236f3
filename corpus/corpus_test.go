package corpus

import (
	"reflect"
	"testing"
)

func TestParseScriptAndEscape(t *testing.T) {
	for _, code := range []string{"hi", "bn", "ta", "te", "gu", "pa", "or", "ml", "my", "kn", "si"} {
		if _, ok := ParseScript(code); !ok {
			t.Errorf("ParseScript(%q) failed", code)
		}
	}
	if _, ok := ParseScript("xx"); ok {
		t.Error("ParseScript(\"xx\") unexpectedly succeeded")
	}
	for _, code := range []string{"none", "json", "html"} {
		if _, ok := ParseEscape(code); !ok {
			t.Errorf("ParseEscape(%q) failed", code)
		}
	}
}

func TestUnescapeJSON(t *testing.T) {
	cases := []struct{ in, want string }{
		{"x\\u0915y", "xकy"},
		{`\\u0915`, `\\u0915`}, // escaped backslash: not a \u escape
		{`a\uD800b`, "a b"},    // lone surrogate -> U+0020
	}
	for _, c := range cases {
		if got := unescapeJSON(c.in); got != c.want {
			t.Errorf("unescapeJSON(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnescapeHTML(t *testing.T) {
	cases := []struct{ in, want string }{
		{"&#2325;", "क"},
		{"a&zwj;b", "a‍b"},
		{"a&zwnj;b", "a‌b"},
		{"&#9999999999;", " "},
		{"plain text", "plain text"},
	}
	for _, c := range cases {
		if got := unescapeHTML(c.in); got != c.want {
			t.Errorf("unescapeHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractWordsDedupAndSort(t *testing.T) {
	lines := []string{
		"कख hello कख",
		"गघ",
	}
	got := ExtractWords(lines, Devanagari, EscapeNone)
	want := []string{"कख", "गघ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractWords = %v, want %v", got, want)
	}
}

func TestExtractWordsDropsNonScriptSpecific(t *testing.T) {
	// A lone shared ZWJ is part of the splitting alphabet but is never
	// script-specific by itself, so a "word" consisting only of it must
	// be dropped.
	lines := []string{"‍"}
	got := ExtractWords(lines, Devanagari, EscapeNone)
	if len(got) != 0 {
		t.Fatalf("ExtractWords(%q) = %v, want none", lines, got)
	}
}

func TestExtractWordsTrimsLeadingCombiningMarks(t *testing.T) {
	lines := []string{"́क"}
	got := ExtractWords(lines, Devanagari, EscapeNone)
	want := []string{"क"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractWords = %v, want %v", got, want)
	}
}

func TestExtractWordsJSONEscape(t *testing.T) {
	lines := []string{"\\u0915\\u0916 plain"}
	got := ExtractWords(lines, Devanagari, EscapeJSON)
	want := []string{"कख"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractWords = %v, want %v", got, want)
	}
}

func TestIdempotence(t *testing.T) {
	lines := []string{"कख गघङ"}
	once := ExtractWords(lines, Devanagari, EscapeNone)
	twice := ExtractWords(once, Devanagari, EscapeNone)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("extraction not idempotent: %v vs %v", once, twice)
	}
}

func TestMyanmarScriptRanges(t *testing.T) {
	if !IsScriptChar(Myanmar, 0x1000) {
		t.Error("U+1000 should be a Myanmar script char")
	}
	if !IsScriptSpecificChar(Myanmar, 0xAA60) {
		t.Error("U+AA60 (Myanmar Extended-A) should be Myanmar-specific")
	}
	if IsScriptChar(Myanmar, 0x0915) {
		t.Error("Devanagari Ka should not be a Myanmar script char")
	}
}
