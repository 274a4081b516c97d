// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command redmark is the CLI for the annotation-diff engine.
//
// It exposes the engine's five operations for scripting and spot
// checks without running the review server:
//
//	redmark diff original.txt edited.txt
//	redmark extract annotated.txt
//	redmark strip annotated.txt
//	redmark repair annotated.txt
//	redmark validate annotated.txt
//
// Any file argument may be "-" (or omitted, where a single input is
// expected) to read from stdin.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
