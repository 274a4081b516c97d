// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package review provides the HTTP service around the annotation-diff
// engine.
//
// The service exposes endpoints for:
//   - Computing annotated diffs between original and edited text
//   - Refreshing hand-edited annotated text (validate + repair)
//   - Extracting the accepted plain text
//   - Stripping markers for audit output
//   - Validating marker balance
package review

import (
	"time"

	"github.com/RedmarkAI/Redmark/services/review/engine"
)

// ServiceConfig configures the review service.
type ServiceConfig struct {
	// MaxBodyBytes caps the request body size.
	// Default: 1MB
	MaxBodyBytes int64

	// RateLimit is the sustained request rate per second across all
	// endpoints. Zero disables rate limiting.
	// Default: 50
	RateLimit float64

	// RateBurst is the rate limiter burst size.
	// Default: 100
	RateBurst int
}

// DefaultServiceConfig returns sensible defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxBodyBytes: 1 << 20, // 1MB
		RateLimit:    50,
		RateBurst:    100,
	}
}

// Service wraps the engine for HTTP consumption.
//
// Thread Safety:
//
//	Service is safe for concurrent use. The engine is a pure function
//	library, so the service holds no mutable state beyond config.
type Service struct {
	config ServiceConfig
}

// NewService creates a review service with the given configuration.
func NewService(config ServiceConfig) *Service {
	return &Service{config: config}
}

// Config returns the service configuration.
func (s *Service) Config() ServiceConfig {
	return s.config
}

// Diff computes the annotated diff between original and modified text.
//
// Outputs:
//
//	*DiffResponse - Annotated text plus input sizes.
//	error - engine.ErrInputTooLarge when either input exceeds the guard.
func (s *Service) Diff(original, modified string) (*DiffResponse, error) {
	start := time.Now()
	annotated, err := engine.ComputeDiff(original, modified)
	if err != nil {
		diffTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	diffTotal.WithLabelValues("ok").Inc()
	diffDuration.Observe(time.Since(start).Seconds())

	return &DiffResponse{
		Annotated:     annotated,
		OriginalChars: len([]rune(original)),
		ModifiedChars: len([]rune(modified)),
	}, nil
}

// Refresh re-validates hand-edited annotated text before re-display.
//
// Description:
//
//	Checks marker balance and repairs the text when unbalanced, so the
//	rendering collaborator always receives balanced markers. The
//	accepted text is extracted from the raw edited string, not the
//	repaired one; repair exists only for display.
func (s *Service) Refresh(annotated string) *RefreshResponse {
	balanced := engine.ValidateTags(annotated)

	repaired := annotated
	if !balanced {
		repaired = engine.RepairTags(annotated)
		repairTotal.Inc()
	}

	return &RefreshResponse{
		Annotated: repaired,
		Repaired:  !balanced,
		Balanced:  engine.ValidateTags(repaired),
		Accepted:  engine.ExtractFinal(annotated),
	}
}

// Extract computes the plain accepted text of annotated input.
// Never fails, regardless of marker malformation.
func (s *Service) Extract(annotated string) *ExtractResponse {
	return &ExtractResponse{Accepted: engine.ExtractFinal(annotated)}
}

// Strip removes all markers while keeping content of both kinds.
func (s *Service) Strip(annotated string) *StripResponse {
	return &StripResponse{Plain: engine.StripTags(annotated)}
}

// Validate reports marker balance with per-kind counts.
func (s *Service) Validate(annotated string) *ValidateResponse {
	counts := engine.CountTags(annotated)
	return &ValidateResponse{
		Balanced: counts.Balanced(),
		Counts:   counts,
	}
}
