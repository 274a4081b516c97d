// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package engine implements the annotation-diff engine for the review
// workbench.
//
// # Description
//
// The engine compares an original text against a human-edited version and
// produces a single annotated string in which removed content is wrapped in
// <false>...</false> marker pairs and inserted content in <true>...</true>
// pairs. It can also invert that encoding back into the plain "accepted"
// text, tolerating arbitrarily malformed markers left behind by manual
// re-editing of the annotated string.
//
// The pipeline is Tokenize -> Align -> Encode for producing annotated text,
// and a single-pass tag scanner (ValidateTags, RepairTags, StripTags,
// ExtractFinal) for consuming it.
//
// # Thread Safety
//
// Every function in this package is a pure function of its inputs with no
// shared mutable state. All operations are safe for concurrent use.
package engine

import (
	"strings"
	"unicode"
)

// =============================================================================
// Token Classes
// =============================================================================

// TokenClass categorizes a token span for alignment purposes.
type TokenClass string

const (
	// ClassCJKChar is a single CJK ideograph (U+4E00..U+9FFF).
	// CJK scripts carry meaning per character, so diffs are
	// character-granular here.
	ClassCJKChar TokenClass = "cjk"

	// ClassLatinWord is a run of alphabetic characters, including
	// interior hyphens and apostrophes.
	ClassLatinWord TokenClass = "word"

	// ClassNumber is a run of digits and decimal points, optionally
	// followed by a unit suffix ("24h", "3.5kg").
	ClassNumber TokenClass = "number"

	// ClassWhitespace is a run of consecutive whitespace characters,
	// collapsed into a single span.
	ClassWhitespace TokenClass = "whitespace"

	// ClassFormula is an inline or display math span ($...$ or $$...$$),
	// captured whole so markup survives alignment intact.
	ClassFormula TokenClass = "formula"

	// ClassOther is any other single character (punctuation, symbols).
	ClassOther TokenClass = "other"
)

// String returns the string representation of the class.
func (c TokenClass) String() string {
	return string(c)
}

// =============================================================================
// Token Span
// =============================================================================

// Span is a minimal, lossless, classified slice of the source text.
//
// Spans produced by Tokenize are contiguous and non-overlapping;
// concatenating their Text fields reconstructs the source string
// byte-for-byte.
type Span struct {
	// Text is the exact source text covered by this span.
	Text string

	// Class is the token class used during alignment.
	Class TokenClass
}

// IsWhitespace returns true if the span covers only whitespace.
func (s Span) IsWhitespace() bool {
	return s.Class == ClassWhitespace
}

// joinSpans concatenates the text of spans[lo:hi].
func joinSpans(spans []Span, lo, hi int) string {
	var sb strings.Builder
	for _, s := range spans[lo:hi] {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// =============================================================================
// Tokenizer
// =============================================================================

// Tokenize splits text into an ordered sequence of classified spans.
//
// Description:
//
//	Scans left to right with a single cursor, applying classification
//	rules in priority order: formula spans ($$...$$ or $...$), single
//	CJK characters, Latin words, numbers with optional unit suffixes,
//	whitespace runs, and finally single-character fallback spans.
//
//	Tokenize is total and deterministic. It never fails, and the
//	concatenation of the returned spans reproduces the input exactly.
//
// Inputs:
//
//	text - The text to tokenize. May be empty.
//
// Outputs:
//
//	[]Span - The token spans. Empty input yields an empty (nil) slice.
func Tokenize(text string) []Span {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var spans []Span

	for i := 0; i < len(runes); {
		r := runes[i]

		// Formula spans take priority so math markup is never split
		// by the aligner.
		if r == '$' {
			if end, ok := scanFormula(runes, i); ok {
				spans = append(spans, Span{Text: string(runes[i:end]), Class: ClassFormula})
				i = end
				continue
			}
		}

		if isCJK(r) {
			spans = append(spans, Span{Text: string(r), Class: ClassCJKChar})
			i++
			continue
		}

		if unicode.IsLetter(r) {
			end := scanWord(runes, i)
			spans = append(spans, Span{Text: string(runes[i:end]), Class: ClassLatinWord})
			i = end
			continue
		}

		if unicode.IsDigit(r) {
			end := scanNumber(runes, i)
			spans = append(spans, Span{Text: string(runes[i:end]), Class: ClassNumber})
			i = end
			continue
		}

		if unicode.IsSpace(r) {
			end := i + 1
			for end < len(runes) && unicode.IsSpace(runes[end]) {
				end++
			}
			spans = append(spans, Span{Text: string(runes[i:end]), Class: ClassWhitespace})
			i = end
			continue
		}

		spans = append(spans, Span{Text: string(r), Class: ClassOther})
		i++
	}

	return spans
}

// isCJK reports whether r is in the CJK Unified Ideographs block.
func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// scanFormula returns the exclusive end index of a formula span starting
// at runes[start] (which must be '$'), or ok=false if no closing
// delimiter exists.
//
// Display math ($$...$$) may span newlines; inline math ($...$) must
// close before the next newline. Matching is non-greedy.
func scanFormula(runes []rune, start int) (int, bool) {
	display := start+1 < len(runes) && runes[start+1] == '$'

	if display {
		for i := start + 2; i+1 < len(runes); i++ {
			if runes[i] == '$' && runes[i+1] == '$' {
				return i + 2, true
			}
		}
		return 0, false
	}

	for i := start + 1; i < len(runes); i++ {
		if runes[i] == '\n' {
			return 0, false
		}
		if runes[i] == '$' {
			return i + 1, true
		}
	}
	return 0, false
}

// scanWord returns the exclusive end index of a Latin word starting at
// runes[start]. Hyphens and apostrophes are included only between
// letters ("well-known", "don't"), never at the edge of the word.
func scanWord(runes []rune, start int) int {
	end := start + 1
	for end < len(runes) {
		r := runes[end]
		if unicode.IsLetter(r) && !isCJK(r) {
			end++
			continue
		}
		if (r == '-' || r == '\'') && end+1 < len(runes) &&
			unicode.IsLetter(runes[end+1]) && !isCJK(runes[end+1]) {
			end += 2
			continue
		}
		break
	}
	return end
}

// scanNumber returns the exclusive end index of a number starting at
// runes[start]. A run of digits and decimal points may be followed by a
// run of letters so quantities like "24h" stay atomic.
func scanNumber(runes []rune, start int) int {
	end := start + 1
	for end < len(runes) && (unicode.IsDigit(runes[end]) || runes[end] == '.') {
		end++
	}
	// Trailing dots belong to the sentence, not the number.
	for end > start+1 && runes[end-1] == '.' {
		end--
	}
	for end < len(runes) && unicode.IsLetter(runes[end]) && !isCJK(runes[end]) {
		end++
	}
	return end
}
