// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// Correction is an immutable provenance value tying together the three
// representations of one reviewed text.
//
// Accepted is always derived from Annotated via ExtractFinal, never
// cached independently, so the two can not drift apart the way parallel
// edited/final fields on a mutable record do.
type Correction struct {
	// Original is the unedited baseline text.
	Original string `json:"original"`

	// Annotated is the marker-carrying diff of Original against the
	// reviewer's edit, possibly hand-modified afterwards.
	Annotated string `json:"annotated"`

	// Accepted is ExtractFinal(Annotated): the plain text a downstream
	// consumer should persist.
	Accepted string `json:"accepted"`
}

// NewCorrection diffs original against modified and captures all three
// representations.
//
// Outputs:
//
//	Correction - The provenance value.
//	error - *InputTooLargeError from the diff size guard.
func NewCorrection(original, modified string) (Correction, error) {
	annotated, err := ComputeDiff(original, modified)
	if err != nil {
		return Correction{}, err
	}
	return Correction{
		Original:  original,
		Annotated: annotated,
		Accepted:  ExtractFinal(annotated),
	}, nil
}

// WithAnnotated returns a copy carrying a hand-edited annotated string,
// with Accepted re-derived from it.
//
// The edited string is taken as-is; markers may be malformed. Balance is
// a display concern: callers re-rendering the result should pass
// Annotated through RepairTags, while Accepted here is already computed
// from the raw edit.
func (c Correction) WithAnnotated(edited string) Correction {
	return Correction{
		Original:  c.Original,
		Annotated: edited,
		Accepted:  ExtractFinal(edited),
	}
}

// Balanced reports whether the annotated text currently has balanced
// markers.
func (c Correction) Balanced() bool {
	return ValidateTags(c.Annotated)
}
