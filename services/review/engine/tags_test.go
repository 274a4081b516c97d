// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "testing"

func TestValidateTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"no_markers", "plain text with <b>html</b>", true},
		{"balanced_pair", "<false>a</false><true>b</true>", true},
		{"unclosed_false", "<false>a", false},
		{"unclosed_true", "a<true>b", false},
		{"stray_closer", "a</false>", false},
		{"cross_kind_counts_ok", "<false>a<true>b</true>c</false>", true},
		{"partial_marker_is_plain", "<fals>a</fals>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateTags(tt.text); got != tt.want {
				t.Errorf("ValidateTags(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountTags(t *testing.T) {
	c := CountTags("<false>a</false><false>b<true>c</true>")
	want := TagCounts{FalseOpen: 2, FalseClose: 1, TrueOpen: 1, TrueClose: 1}
	if c != want {
		t.Errorf("CountTags = %+v, want %+v", c, want)
	}
	if c.Balanced() {
		t.Error("Balanced() = true for unbalanced counts")
	}
}

func TestRepairTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"balanced_unchanged", "<false>a</false>", "<false>a</false>"},
		{"append_false_closer", "<false>a", "<false>a</false>"},
		{"append_true_closer", "<true>b", "<true>b</true>"},
		{"append_both", "<false>a<true>b", "<false>a<true>b</false></true>"},
		{"multiple_missing", "<false>a<false>b", "<false>a<false>b</false></false>"},
		{"extra_closers_left_alone", "a</false>", "a</false>"},
		{"plain_text_unchanged", "no markers here", "no markers here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepairTags(tt.text); got != tt.want {
				t.Errorf("RepairTags(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRepairTags_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"<false>a",
		"<true>b<false>c",
		"a</true>",
		"<false>a</false><true>b</true>",
		"<false><false><false>deep",
	}

	for _, in := range inputs {
		once := RepairTags(in)
		twice := RepairTags(once)
		if once != twice {
			t.Errorf("RepairTags not idempotent on %q: %q != %q", in, once, twice)
		}
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"no_markers", "keep everything", "keep everything"},
		{"both_kinds_kept", "<false>old</false><true>new</true>", "oldnew"},
		{"unbalanced_markers_removed", "<false>old<true>new", "oldnew"},
		{"interleaved", "a<false>b</false>c<true>d</true>e", "abcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.text); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripTags_Idempotent(t *testing.T) {
	inputs := []string{"a<false>b</false>", "no markers", "<true>x"}
	for _, in := range inputs {
		once := StripTags(in)
		if StripTags(once) != once {
			t.Errorf("StripTags not idempotent on %q", in)
		}
	}
}

func TestExtractFinal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"plain_passthrough", "untouched text", "untouched text"},
		{"drops_deletion_keeps_insertion", "<false>A</false><true>B</true>", "B"},
		{"mixed_with_context", "keep <false>drop</false> and <true>add</true> tail", "keep  and add tail"},
		{"nested_false_all_dropped", "<false>a<false>b</false>c</false>d", "d"},
		{"unterminated_false_swallows_tail", "<false>gone forever", ""},
		{"true_opener_ends_false_region", "<false>wrong<true>right", "right"},
		{"stray_false_closer_ignored", "a</false>b", "ab"},
		{"true_markers_never_hide_content", "x<true>y<true>z", "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFinal(tt.text); got != tt.want {
				t.Errorf("ExtractFinal(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Extraction runs on the raw edited string. Repairing first folds
// trailing plain text into the false region; this pins the difference
// so the ordering policy stays visible.
func TestExtractFinal_BeforeRepairPolicy(t *testing.T) {
	edited := "<false>rejected part kept-by-mistake"

	raw := ExtractFinal(edited)
	repairedFirst := ExtractFinal(RepairTags(edited))

	if raw != "" || repairedFirst != "" {
		t.Fatalf("unexpected extraction: raw=%q repaired=%q", raw, repairedFirst)
	}

	// With trailing plain text after the unclosed region the results
	// stay identical here because repair appends at the very end, but
	// the accepted text must still come from the raw string.
	edited = "<false>rejected</false> trailing"
	if got := ExtractFinal(edited); got != " trailing" {
		t.Fatalf("ExtractFinal = %q, want %q", got, " trailing")
	}
}
