// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "strings"

// Marker literals of the annotated-text grammar.
const (
	falseOpen  = "<false>"
	falseClose = "</false>"
	trueOpen   = "<true>"
	trueClose  = "</true>"
)

// =============================================================================
// Tag Scanner
// =============================================================================

// tagKind identifies a lexeme of the annotated-text grammar.
type tagKind int

const (
	tagPlain tagKind = iota
	tagFalseOpen
	tagFalseClose
	tagTrueOpen
	tagTrueClose
)

// tagToken is a single lexeme: either a marker literal or a maximal run
// of plain text between markers.
type tagToken struct {
	kind tagKind
	text string
}

// scanTags lexes text into marker and plain tokens in a single pass.
//
// The scanner recognizes exactly the four marker literals and makes no
// assumption about nesting or balance, so it is total over arbitrary
// hand-edited input. Concatenating the token texts reproduces the input.
func scanTags(text string) []tagToken {
	var tokens []tagToken
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			tokens = append(tokens, tagToken{kind: tagPlain, text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		if text[i] == '<' {
			if kind, lit, ok := matchMarker(text[i:]); ok {
				flush()
				tokens = append(tokens, tagToken{kind: kind, text: lit})
				i += len(lit)
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flush()
	return tokens
}

// matchMarker reports which marker literal, if any, is a prefix of s.
func matchMarker(s string) (tagKind, string, bool) {
	switch {
	case strings.HasPrefix(s, falseOpen):
		return tagFalseOpen, falseOpen, true
	case strings.HasPrefix(s, falseClose):
		return tagFalseClose, falseClose, true
	case strings.HasPrefix(s, trueOpen):
		return tagTrueOpen, trueOpen, true
	case strings.HasPrefix(s, trueClose):
		return tagTrueClose, trueClose, true
	}
	return tagPlain, "", false
}

// =============================================================================
// Validate / Repair
// =============================================================================

// TagCounts holds per-kind marker counts for diagnostics.
type TagCounts struct {
	FalseOpen  int `json:"false_open"`
	FalseClose int `json:"false_close"`
	TrueOpen   int `json:"true_open"`
	TrueClose  int `json:"true_close"`
}

// Balanced reports whether open and close counts match per kind.
func (c TagCounts) Balanced() bool {
	return c.FalseOpen == c.FalseClose && c.TrueOpen == c.TrueClose
}

// CountTags returns the marker counts of text.
func CountTags(text string) TagCounts {
	var c TagCounts
	for _, tok := range scanTags(text) {
		switch tok.kind {
		case tagFalseOpen:
			c.FalseOpen++
		case tagFalseClose:
			c.FalseClose++
		case tagTrueOpen:
			c.TrueOpen++
		case tagTrueClose:
			c.TrueClose++
		}
	}
	return c
}

// ValidateTags reports whether every opening marker in text has a
// matching closing marker of the same kind.
//
// Validation is observational only: unbalanced markers are never an
// error, because hand-edited annotated text routinely breaks balance.
// Callers re-displaying such text should run it through RepairTags.
func ValidateTags(text string) bool {
	return CountTags(text).Balanced()
}

// RepairTags deterministically rebalances marker counts.
//
// Description:
//
//	For each marker kind where opens exceed closes, the missing closing
//	markers are appended at the end of the string. This guarantees
//	syntactic balance, not semantic correctness: plain text trailing an
//	unclosed <false> ends up inside the repaired false region. For that
//	reason the accepted text is always extracted from the raw string
//	(see ExtractFinal), never from repaired output; repair exists only
//	to make annotated text safe to re-render.
//
//	RepairTags is idempotent and returns balanced input unchanged.
func RepairTags(text string) string {
	c := CountTags(text)
	if c.Balanced() {
		return text
	}

	var sb strings.Builder
	sb.WriteString(text)
	for n := c.FalseOpen - c.FalseClose; n > 0; n-- {
		sb.WriteString(falseClose)
	}
	for n := c.TrueOpen - c.TrueClose; n > 0; n-- {
		sb.WriteString(trueClose)
	}
	return sb.String()
}

// =============================================================================
// Strip / Extract
// =============================================================================

// StripTags removes all marker literals while keeping the content of
// both kinds.
//
// Used for audit and back-conversion, not for computing the accepted
// result. Idempotent; text without markers is returned unchanged.
func StripTags(text string) string {
	var sb strings.Builder
	for _, tok := range scanTags(text) {
		if tok.kind == tagPlain {
			sb.WriteString(tok.text)
		}
	}
	return sb.String()
}

// ExtractFinal computes the plain accepted text of an annotated string.
//
// Description:
//
//	Keeps untagged text and the contents of <true> spans, drops the
//	contents of <false> spans. The scan counts false-region depth:
//	<false> increments, </false> decrements (floored at zero), and
//	plain text is kept only at depth zero. <true> markers never hide
//	their content; an opening <true> additionally terminates any open
//	false region, because inserted content following an unterminated
//	<false> is accepted content, not part of the deletion
//	("<false>wrong<true>right" extracts to "right").
//
//	ExtractFinal is total: it never fails, no matter how malformed the
//	markers are. An unclosed <false> swallows everything to the end of
//	the string; a stray </false> at depth zero is ignored. Callers must
//	pass the raw edited string here, not the output of RepairTags,
//	which would fold trailing plain text into the false region.
//
// Inputs:
//
//	text - Annotated text, possibly hand-edited and malformed.
//
// Outputs:
//
//	string - The plain accepted text, free of marker literals.
func ExtractFinal(text string) string {
	var sb strings.Builder
	depth := 0
	for _, tok := range scanTags(text) {
		switch tok.kind {
		case tagFalseOpen:
			depth++
		case tagFalseClose:
			if depth > 0 {
				depth--
			}
		case tagTrueOpen:
			depth = 0
		case tagPlain:
			if depth == 0 {
				sb.WriteString(tok.text)
			}
		}
	}
	return sb.String()
}
