// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RedmarkAI/Redmark/services/review/engine"
)

// Handlers contains the HTTP handlers for the review service.
//
// Thread Safety: Handlers is safe for concurrent use.
type Handlers struct {
	svc *Service
}

// NewHandlers creates handlers wrapping the given service.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleDiff handles POST /v1/review/diff.
//
// Description:
//
//	Computes the annotated diff between the original and modified text.
//
// Response:
//
//	200 OK: DiffResponse
//	400 Bad Request: Invalid body
//	413 Request Entity Too Large: Input exceeds the engine size guard
func (h *Handlers) HandleDiff(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleDiff")

	var req DiffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.svc.Diff(req.Original, req.Modified)
	if err != nil {
		if errors.Is(err, engine.ErrInputTooLarge) {
			logger.Warn("Input rejected by size guard",
				"original_len", len(req.Original),
				"modified_len", len(req.Modified))
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: err.Error(),
				Code:  "INPUT_TOO_LARGE",
			})
			return
		}
		logger.Error("Diff failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Diff computation failed",
			Code:  "DIFF_ERROR",
		})
		return
	}

	logger.Info("Diff computed",
		"original_chars", resp.OriginalChars,
		"modified_chars", resp.ModifiedChars,
		"annotated_len", len(resp.Annotated))
	c.JSON(http.StatusOK, resp)
}

// HandleRefresh handles POST /v1/review/refresh.
//
// Description:
//
//	Validates a hand-edited annotated string and repairs marker balance
//	when needed. Tag malformation is never an error here; the reviewer's
//	free-text edit must not be rejected.
//
// Response:
//
//	200 OK: RefreshResponse
//	400 Bad Request: Invalid body
func (h *Handlers) HandleRefresh(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleRefresh")

	var req TaggedTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp := h.svc.Refresh(req.Text)
	if resp.Repaired {
		logger.Info("Repaired unbalanced markers", "text_len", len(req.Text))
	}
	c.JSON(http.StatusOK, resp)
}

// HandleExtract handles POST /v1/review/extract.
//
// Response:
//
//	200 OK: ExtractResponse
//	400 Bad Request: Invalid body
func (h *Handlers) HandleExtract(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleExtract")

	var req TaggedTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	c.JSON(http.StatusOK, h.svc.Extract(req.Text))
}

// HandleStrip handles POST /v1/review/strip.
//
// Response:
//
//	200 OK: StripResponse
//	400 Bad Request: Invalid body
func (h *Handlers) HandleStrip(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleStrip")

	var req TaggedTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	c.JSON(http.StatusOK, h.svc.Strip(req.Text))
}

// HandleValidate handles POST /v1/review/validate.
//
// Response:
//
//	200 OK: ValidateResponse
//	400 Bad Request: Invalid body
func (h *Handlers) HandleValidate(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleValidate")

	var req TaggedTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	c.JSON(http.StatusOK, h.svc.Validate(req.Text))
}

// HandleHealth handles GET /v1/review/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleReady handles GET /v1/review/ready.
// The engine is stateless, so readiness equals liveness.
func (h *Handlers) HandleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// getOrCreateRequestID returns the X-Request-ID header, generating one
// when absent, and echoes it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}
