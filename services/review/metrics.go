// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine operation metrics.
var (
	diffTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "review_diff_total",
		Help: "Diff computations by outcome",
	}, []string{"outcome"})

	diffDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "review_diff_duration_seconds",
		Help:    "Time to compute one annotated diff",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})

	repairTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "review_tag_repairs_total",
		Help: "Hand-edited texts that needed marker repair",
	})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "review_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})
)
