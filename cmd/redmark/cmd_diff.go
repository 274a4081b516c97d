// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RedmarkAI/Redmark/services/review/engine"
)

// runDiff implements "redmark diff ORIGINAL MODIFIED".
//
// Both arguments are file paths; at most one may be "-" for stdin.
func runDiff(cmd *cobra.Command, args []string) error {
	if args[0] == "-" && args[1] == "-" {
		return errors.New("only one input may come from stdin")
	}

	original, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	modified, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}

	annotated, err := engine.ComputeDiff(original, modified)
	if err != nil {
		if errors.Is(err, engine.ErrInputTooLarge) {
			return fmt.Errorf("%w (the engine caps inputs at %d characters)", err, engine.MaxInputChars)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), annotated)
	return nil
}
