// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput reads a file argument, with "-" meaning the command's stdin.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// readSingleInput reads the optional single file argument of the tag
// commands, defaulting to stdin when absent.
func readSingleInput(cmd *cobra.Command, args []string) (string, error) {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	return readInput(cmd, path)
}
