// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"strings"
	"unicode/utf8"
)

// segKind classifies a candidate output segment before the merge pass.
type segKind int

const (
	segPlain segKind = iota
	segFalse
	segTrue
)

// segment is a candidate span of encoder output.
type segment struct {
	kind segKind
	text string
}

// =============================================================================
// Diff Encoder
// =============================================================================

// ComputeDiff compares two texts and returns the annotated string.
//
// Description:
//
//	Tokenizes both inputs, aligns the token sequences, and renders the
//	edit script with <false>...</false> around removed content and
//	<true>...</true> around inserted content. Adjacent candidate spans
//	of the same kind are coalesced into one marker pair, and candidate
//	spans consisting only of whitespace are emitted unmarked, so pure
//	spacing changes never render as a diff.
//
//	Fast paths skip alignment entirely: identical inputs skip straight
//	to the repair step, and when exactly one side is empty the other is
//	wrapped in a single marker pair.
//
//	Output is always balanced, and a marker pair never contains another
//	pair of the same kind. Inputs may themselves contain marker
//	literals; every output passes through RepairTags so stray openers
//	carried in from the input cannot leave the result unbalanced.
//
// Inputs:
//
//	original - The baseline text.
//	modified - The human-edited text.
//
// Outputs:
//
//	string - The annotated text.
//	error - *InputTooLargeError when either input exceeds MaxInputChars.
//
// Errors:
//
//	ErrInputTooLarge (via errors.Is) - Input exceeds the size guard.
//	  Raised before tokenization; the caller may chunk and retry.
func ComputeDiff(original, modified string) (string, error) {
	if err := checkSize(original); err != nil {
		return "", err
	}
	if err := checkSize(modified); err != nil {
		return "", err
	}

	if original == modified {
		return RepairTags(original), nil
	}
	if original == "" {
		return RepairTags(trueOpen + modified + trueClose), nil
	}
	if modified == "" {
		return RepairTags(falseOpen + original + falseClose), nil
	}

	orig := Tokenize(original)
	mod := Tokenize(modified)
	ops := Align(orig, mod)

	return RepairTags(render(encode(orig, mod, ops))), nil
}

// checkSize enforces the size guard on a single input.
func checkSize(text string) error {
	if n := utf8.RuneCountInString(text); n > MaxInputChars {
		return &InputTooLargeError{Chars: n, Limit: MaxInputChars}
	}
	return nil
}

// encode turns an edit script into candidate segments, applying the
// whitespace-suppression rule per candidate.
func encode(orig, mod []Span, ops []EditOp) []segment {
	var segs []segment
	for _, op := range ops {
		switch op.Kind {
		case OpEqual:
			segs = append(segs, segment{segPlain, joinSpans(orig, op.I1, op.I2)})
		case OpDelete:
			segs = append(segs, candidate(segFalse, joinSpans(orig, op.I1, op.I2)))
		case OpInsert:
			segs = append(segs, candidate(segTrue, joinSpans(mod, op.J1, op.J2)))
		case OpReplace:
			otext := joinSpans(orig, op.I1, op.I2)
			mtext := joinSpans(mod, op.J1, op.J2)
			// A whitespace-for-whitespace swap is a pure spacing
			// change: keep only the modified side, unmarked, so the
			// run is not emitted twice.
			if isWhitespaceOnly(otext) && isWhitespaceOnly(mtext) {
				segs = append(segs, segment{segPlain, mtext})
				continue
			}
			segs = append(segs, candidate(segFalse, otext), candidate(segTrue, mtext))
		}
	}
	return segs
}

// candidate builds a marked segment, demoting whitespace-only text to a
// plain segment.
func candidate(kind segKind, text string) segment {
	if isWhitespaceOnly(text) {
		return segment{segPlain, text}
	}
	return segment{kind, text}
}

// isWhitespaceOnly reports whether every character in text is whitespace.
func isWhitespaceOnly(text string) bool {
	return strings.TrimSpace(text) == ""
}

// render coalesces adjacent same-kind segments and emits marker pairs.
func render(segs []segment) string {
	var sb strings.Builder
	for i := 0; i < len(segs); {
		kind := segs[i].kind
		j := i
		for j < len(segs) && segs[j].kind == kind {
			j++
		}

		var text strings.Builder
		for _, s := range segs[i:j] {
			text.WriteString(s.text)
		}

		switch kind {
		case segFalse:
			sb.WriteString(falseOpen)
			sb.WriteString(text.String())
			sb.WriteString(falseClose)
		case segTrue:
			sb.WriteString(trueOpen)
			sb.WriteString(text.String())
			sb.WriteString(trueClose)
		default:
			sb.WriteString(text.String())
		}
		i = j
	}
	return sb.String()
}
