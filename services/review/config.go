// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration schema for the review server.
//
// All fields are optional; zero values fall back to defaults from
// DefaultFileConfig. Example:
//
//	port: 8080
//	log_level: info
//	max_body_bytes: 1048576
//	rate_limit: 50
//	rate_burst: 100
type FileConfig struct {
	// Port is the listen port.
	Port int `yaml:"port" validate:"omitempty,min=1,max=65535"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes" validate:"omitempty,min=1024"`

	// RateLimit is the sustained request rate per second. An explicit
	// zero disables rate limiting; leaving the key out keeps the
	// default, so the field is a pointer to tell the two apart.
	RateLimit *float64 `yaml:"rate_limit" validate:"omitempty,min=0"`

	// RateBurst is the limiter burst size.
	RateBurst int `yaml:"rate_burst" validate:"min=0"`
}

// DefaultFileConfig returns the server defaults.
func DefaultFileConfig() FileConfig {
	svc := DefaultServiceConfig()
	rateLimit := svc.RateLimit
	return FileConfig{
		Port:         8080,
		LogLevel:     "info",
		MaxBodyBytes: svc.MaxBodyBytes,
		RateLimit:    &rateLimit,
		RateBurst:    svc.RateBurst,
	}
}

// configValidate is the validator instance for config files.
var configValidate = validator.New()

// LoadFileConfig reads and validates a YAML config file, filling unset
// fields with defaults.
//
// Inputs:
//
//	path - Path to the YAML file.
//
// Outputs:
//
//	FileConfig - The merged configuration.
//	error - Non-nil on read, parse, or validation failure.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file FileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := configValidate.Struct(file); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if file.Port != 0 {
		cfg.Port = file.Port
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.MaxBodyBytes != 0 {
		cfg.MaxBodyBytes = file.MaxBodyBytes
	}
	if file.RateLimit != nil {
		cfg.RateLimit = file.RateLimit
	}
	if file.RateBurst != 0 {
		cfg.RateBurst = file.RateBurst
	}
	return cfg, nil
}

// ServiceConfig converts the file config into the service configuration.
func (f FileConfig) ServiceConfig() ServiceConfig {
	rateLimit := DefaultServiceConfig().RateLimit
	if f.RateLimit != nil {
		rateLimit = *f.RateLimit
	}
	return ServiceConfig{
		MaxBodyBytes: f.MaxBodyBytes,
		RateLimit:    rateLimit,
		RateBurst:    f.RateBurst,
	}
}
