// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import "github.com/RedmarkAI/Redmark/services/review/engine"

// DiffRequest is the request body for POST /v1/review/diff.
type DiffRequest struct {
	// Original is the baseline text. May be empty.
	Original string `json:"original"`

	// Modified is the human-edited text. May be empty.
	Modified string `json:"modified"`
}

// DiffResponse is the response for POST /v1/review/diff.
type DiffResponse struct {
	// Annotated is the marker-carrying diff.
	Annotated string `json:"annotated"`

	// OriginalChars is the character count of the original input.
	OriginalChars int `json:"original_chars"`

	// ModifiedChars is the character count of the modified input.
	ModifiedChars int `json:"modified_chars"`
}

// TaggedTextRequest is the request body shared by the refresh, extract,
// strip, and validate endpoints.
type TaggedTextRequest struct {
	// Text is annotated text, possibly hand-edited and malformed.
	Text string `json:"text"`
}

// RefreshResponse is the response for POST /v1/review/refresh.
type RefreshResponse struct {
	// Annotated is the (possibly repaired) annotated text to re-render.
	Annotated string `json:"annotated"`

	// Repaired indicates the input was unbalanced and got repaired.
	Repaired bool `json:"repaired"`

	// Balanced indicates the returned annotated text is balanced.
	// False only when the input carried closers without openers, which
	// repair does not remove.
	Balanced bool `json:"balanced"`

	// Accepted is the plain accepted text, extracted from the raw
	// input before any repair.
	Accepted string `json:"accepted"`
}

// ExtractResponse is the response for POST /v1/review/extract.
type ExtractResponse struct {
	// Accepted is the plain accepted text.
	Accepted string `json:"accepted"`
}

// StripResponse is the response for POST /v1/review/strip.
type StripResponse struct {
	// Plain is the text with all markers removed and all content kept.
	Plain string `json:"plain"`
}

// ValidateResponse is the response for POST /v1/review/validate.
type ValidateResponse struct {
	// Balanced reports per-kind open/close count parity.
	Balanced bool `json:"balanced"`

	// Counts holds the per-kind marker counts.
	Counts engine.TagCounts `json:"counts"`
}

// ErrorResponse is the error body for all endpoints.
type ErrorResponse struct {
	// Error is a human-readable message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code"`
}
