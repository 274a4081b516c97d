// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "redmark",
		Short: "Annotation-diff tooling for the correction workbench",
		Long: `Redmark computes annotated diffs between an original text and a
human-edited version, marking removals with <false>...</false> and
insertions with <true>...</true>, and converts annotated text back
into the plain accepted form.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	diffCmd = &cobra.Command{
		Use:   "diff ORIGINAL MODIFIED",
		Short: "Compute the annotated diff of two texts",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiff, // Defined in cmd_diff.go
	}

	extractCmd = &cobra.Command{
		Use:   "extract [FILE]",
		Short: "Extract the accepted plain text from annotated input",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract, // Defined in cmd_tags.go
	}

	stripCmd = &cobra.Command{
		Use:   "strip [FILE]",
		Short: "Remove all markers, keeping content of both kinds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStrip, // Defined in cmd_tags.go
	}

	repairCmd = &cobra.Command{
		Use:   "repair [FILE]",
		Short: "Rebalance marker counts in annotated text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRepair, // Defined in cmd_tags.go
	}

	validateCmd = &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check marker balance; exit 1 when unbalanced",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate, // Defined in cmd_tags.go
	}
)

func init() {
	rootCmd.AddCommand(diffCmd, extractCmd, stripCmd, repairCmd, validateCmd)
}
