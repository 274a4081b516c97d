// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RedmarkAI/Redmark/services/review/engine"
)

// runExtract implements "redmark extract [FILE]".
func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readSingleInput(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), engine.ExtractFinal(text))
	return nil
}

// runStrip implements "redmark strip [FILE]".
func runStrip(cmd *cobra.Command, args []string) error {
	text, err := readSingleInput(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), engine.StripTags(text))
	return nil
}

// runRepair implements "redmark repair [FILE]".
func runRepair(cmd *cobra.Command, args []string) error {
	text, err := readSingleInput(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), engine.RepairTags(text))
	return nil
}

// runValidate implements "redmark validate [FILE]".
//
// Prints per-kind counts and exits non-zero on imbalance so scripts can
// gate on the result.
func runValidate(cmd *cobra.Command, args []string) error {
	text, err := readSingleInput(cmd, args)
	if err != nil {
		return err
	}

	counts := engine.CountTags(text)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "<false>  open=%d close=%d\n", counts.FalseOpen, counts.FalseClose)
	fmt.Fprintf(out, "<true>   open=%d close=%d\n", counts.TrueOpen, counts.TrueClose)

	if !counts.Balanced() {
		return fmt.Errorf("markers are unbalanced")
	}
	fmt.Fprintln(out, "balanced")
	return nil
}
