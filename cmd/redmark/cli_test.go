// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newCaptureCmd builds a dummy command whose output goes to the returned
// buffer. The run functions only use the command for its IO streams.
func newCaptureCmd(stdin string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	return cmd, buf
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestRunDiffFiles(t *testing.T) {
	orig := writeTempFile(t, "orig.txt", "the quick fox")
	mod := writeTempFile(t, "mod.txt", "the slow fox")

	cmd, buf := newCaptureCmd("")
	if err := runDiff(cmd, []string{orig, mod}); err != nil {
		t.Fatalf("runDiff failed: %v", err)
	}

	got := strings.TrimRight(buf.String(), "\n")
	want := "the <false>quick</false><true>slow</true> fox"
	if got != want {
		t.Errorf("diff output = %q, want %q", got, want)
	}
}

func TestRunDiffStdin(t *testing.T) {
	mod := writeTempFile(t, "mod.txt", "hello there")

	cmd, buf := newCaptureCmd("hello world")
	if err := runDiff(cmd, []string{"-", mod}); err != nil {
		t.Fatalf("runDiff failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<false>world</false>") {
		t.Errorf("expected deletion marker in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "<true>there</true>") {
		t.Errorf("expected insertion marker in output, got %q", buf.String())
	}
}

func TestRunDiffBothStdin(t *testing.T) {
	cmd, _ := newCaptureCmd("anything")
	if err := runDiff(cmd, []string{"-", "-"}); err == nil {
		t.Fatal("expected error when both inputs are stdin")
	}
}

func TestRunDiffMissingFile(t *testing.T) {
	mod := writeTempFile(t, "mod.txt", "x")
	cmd, _ := newCaptureCmd("")
	if err := runDiff(cmd, []string{"/nonexistent/orig.txt", mod}); err == nil {
		t.Fatal("expected error for missing original file")
	}
}

func TestRunExtract(t *testing.T) {
	cmd, buf := newCaptureCmd("keep <false>old</false><true>new</true> tail")
	if err := runExtract(cmd, nil); err != nil {
		t.Fatalf("runExtract failed: %v", err)
	}
	got := strings.TrimRight(buf.String(), "\n")
	if got != "keep new tail" {
		t.Errorf("extract output = %q, want %q", got, "keep new tail")
	}
}

func TestRunStrip(t *testing.T) {
	in := writeTempFile(t, "tagged.txt", "a <false>b</false><true>c</true> d")
	cmd, buf := newCaptureCmd("")
	if err := runStrip(cmd, []string{in}); err != nil {
		t.Fatalf("runStrip failed: %v", err)
	}
	got := strings.TrimRight(buf.String(), "\n")
	if got != "a bc d" {
		t.Errorf("strip output = %q, want %q", got, "a bc d")
	}
}

func TestRunRepair(t *testing.T) {
	cmd, buf := newCaptureCmd("<false>a<true>b")
	if err := runRepair(cmd, nil); err != nil {
		t.Fatalf("runRepair failed: %v", err)
	}
	got := strings.TrimRight(buf.String(), "\n")
	want := "<false>a<true>b</false></true>"
	if got != want {
		t.Errorf("repair output = %q, want %q", got, want)
	}
}

func TestRunValidateBalanced(t *testing.T) {
	cmd, buf := newCaptureCmd("<false>x</false> y <true>z</true>")
	if err := runValidate(cmd, nil); err != nil {
		t.Fatalf("runValidate failed: %v", err)
	}
	if !strings.Contains(buf.String(), "balanced") {
		t.Errorf("expected balanced verdict, got %q", buf.String())
	}
}

func TestRunValidateUnbalanced(t *testing.T) {
	cmd, buf := newCaptureCmd("<false>x y <true>z</true>")
	err := runValidate(cmd, nil)
	if err == nil {
		t.Fatal("expected error for unbalanced markers")
	}
	if !strings.Contains(buf.String(), "open=") {
		t.Errorf("expected per-marker counts in output, got %q", buf.String())
	}
}
