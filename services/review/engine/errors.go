// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"errors"
	"fmt"
)

// MaxInputChars is the per-input character ceiling enforced before any
// tokenization work. Texts above this size must be chunked by the caller.
const MaxInputChars = 100000

// ErrInputTooLarge is the sentinel for size-guard violations.
// Use errors.Is to detect it regardless of wrapping.
var ErrInputTooLarge = errors.New("input too large")

// InputTooLargeError reports a size-guard violation with the measured
// size and the enforced limit.
type InputTooLargeError struct {
	// Chars is the character count of the offending input.
	Chars int

	// Limit is the enforced ceiling.
	Limit int
}

// Error implements the error interface.
func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: %d characters (limit %d); split the text and retry", e.Chars, e.Limit)
}

// Unwrap makes errors.Is(err, ErrInputTooLarge) work.
func (e *InputTooLargeError) Unwrap() error {
	return ErrInputTooLarge
}
