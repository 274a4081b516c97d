// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCorrection(t *testing.T) {
	c, err := NewCorrection("the quick fox", "the slow fox")
	require.NoError(t, err)

	assert.Equal(t, "the quick fox", c.Original)
	assert.Equal(t, "the <false>quick</false><true>slow</true> fox", c.Annotated)
	assert.Equal(t, "the slow fox", c.Accepted)
	assert.True(t, c.Balanced())
}

func TestNewCorrection_SizeGuard(t *testing.T) {
	big := make([]byte, MaxInputChars+1)
	for i := range big {
		big[i] = 'a'
	}

	_, err := NewCorrection(string(big), "short")
	require.ErrorIs(t, err, ErrInputTooLarge)
}

func TestCorrection_WithAnnotated(t *testing.T) {
	c, err := NewCorrection("Hello world", "Hello")
	require.NoError(t, err)
	require.Equal(t, "Hello", c.Accepted)

	// Reviewer hand-edits the annotated string, leaving it malformed.
	edited := c.WithAnnotated("Hello<false> world<true> again")

	assert.Equal(t, "Hello world", edited.Original, "original is preserved")
	assert.Equal(t, "Hello<false> world<true> again", edited.Annotated)
	assert.Equal(t, "Hello again", edited.Accepted, "accepted re-derived from raw edit")
	assert.False(t, edited.Balanced())

	// The source value is untouched.
	assert.Equal(t, "Hello", c.Accepted)
}
