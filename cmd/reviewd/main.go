// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command reviewd starts the Redmark review API server.
//
// The server wraps the annotation-diff engine behind a small HTTP API
// consumed by the correction workbench UI:
//   - Annotated diff computation (<false>/<true> markers)
//   - Repair and re-validation of hand-edited annotated text
//   - Accepted-text extraction for export pipelines
//
// Usage:
//
//	go run ./cmd/reviewd
//	go run ./cmd/reviewd -port 9090 -debug
//	go run ./cmd/reviewd -config /etc/redmark/reviewd.yaml
//
// Example requests:
//
//	# Health check
//	curl http://localhost:8080/v1/review/health
//
//	# Compute an annotated diff
//	curl -X POST http://localhost:8080/v1/review/diff \
//	  -H "Content-Type: application/json" \
//	  -d '{"original": "the quick fox", "modified": "the slow fox"}'
//
//	# Extract the accepted text from edited markup
//	curl -X POST http://localhost:8080/v1/review/extract \
//	  -H "Content-Type: application/json" \
//	  -d '{"text": "<false>wrong</false><true>right</true>"}'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/RedmarkAI/Redmark/pkg/logging"
	"github.com/RedmarkAI/Redmark/services/review"
)

func main() {
	port := flag.Int("port", 0, "Port to listen on (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug mode")
	configPath := flag.String("config", "", "Path to YAML config file")
	logDir := flag.String("log-dir", "", "Directory for JSON log files")
	flag.Parse()

	cfg := review.DefaultFileConfig()
	if *configPath != "" {
		loaded, err := review.LoadFileConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reviewd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.Port = *port
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if *debug {
		level = logging.LevelDebug
	}
	logger := logging.New(logging.Config{
		Level:   level,
		LogDir:  *logDir,
		Service: "reviewd",
	})
	defer logger.Close()
	logger.Install()

	if *debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := review.NewService(cfg.ServiceConfig())
	handlers := review.NewHandlers(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	if *debug {
		router.Use(gin.Logger())
	}

	v1 := router.Group("/v1")
	review.RegisterRoutes(v1, handlers)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	printBanner(cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("Stopped cleanly")
}

func printBanner(port int) {
	fmt.Printf(`
Redmark Review API
==================
Listening on : http://localhost:%d
Health check : GET  /v1/review/health
Diff         : POST /v1/review/diff
Refresh      : POST /v1/review/refresh
Extract      : POST /v1/review/extract
Metrics      : GET  /metrics

`, port)
}
