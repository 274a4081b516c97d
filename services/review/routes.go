// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all review routes with the router group.
//
// Description:
//
//	Registers all /v1/review/* endpoints. Body-size and rate limiting
//	middleware from this package are applied to the group; any outer
//	middleware should already be on rg.
//
// Endpoints:
//
//	POST /v1/review/diff - Compute an annotated diff
//	POST /v1/review/refresh - Validate and repair hand-edited annotated text
//	POST /v1/review/extract - Extract the accepted plain text
//	POST /v1/review/strip - Strip all markers, keep all content
//	POST /v1/review/validate - Report marker balance and counts
//	GET  /v1/review/health - Health check
//	GET  /v1/review/ready - Readiness check
//
// Example:
//
//	svc := review.NewService(review.DefaultServiceConfig())
//	handlers := review.NewHandlers(svc)
//
//	v1 := router.Group("/v1")
//	review.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	cfg := handlers.svc.Config()

	r := rg.Group("/review")
	r.Use(bodyLimit(cfg.MaxBodyBytes))
	if cfg.RateLimit > 0 {
		r.Use(rateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	{
		// Engine operations
		r.POST("/diff", handlers.HandleDiff)
		r.POST("/refresh", handlers.HandleRefresh)
		r.POST("/extract", handlers.HandleExtract)
		r.POST("/strip", handlers.HandleStrip)
		r.POST("/validate", handlers.HandleValidate)

		// Health checks
		r.GET("/health", handlers.HandleHealth)
		r.GET("/ready", handlers.HandleReady)
	}
}
