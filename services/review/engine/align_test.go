// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "testing"

func TestAlign_BothEmpty(t *testing.T) {
	if ops := Align(nil, nil); len(ops) != 0 {
		t.Fatalf("Align(nil, nil) = %v, want empty", ops)
	}
}

func TestAlign_Identical(t *testing.T) {
	spans := Tokenize("same text here")
	ops := Align(spans, spans)

	if len(ops) != 1 {
		t.Fatalf("ops = %v, want single equal run", ops)
	}
	if ops[0].Kind != OpEqual || ops[0].I1 != 0 || ops[0].I2 != len(spans) {
		t.Errorf("op = %+v, want full-width equal", ops[0])
	}
}

func TestAlign_Kinds(t *testing.T) {
	tests := []struct {
		name      string
		orig, mod string
		wantKinds []OpKind
	}{
		{
			name:      "pure_delete",
			orig:      "keep gone",
			mod:       "keep",
			wantKinds: []OpKind{OpEqual, OpDelete},
		},
		{
			name:      "pure_insert",
			orig:      "keep",
			mod:       "keep more",
			wantKinds: []OpKind{OpEqual, OpInsert},
		},
		{
			name:      "replace_in_middle",
			orig:      "the quick fox",
			mod:       "the slow fox",
			wantKinds: []OpKind{OpEqual, OpReplace, OpEqual},
		},
		{
			name:      "disjoint_is_one_replace",
			orig:      "aaa",
			mod:       "bbb",
			wantKinds: []OpKind{OpReplace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := Align(Tokenize(tt.orig), Tokenize(tt.mod))
			if len(ops) != len(tt.wantKinds) {
				t.Fatalf("ops = %+v, want kinds %v", ops, tt.wantKinds)
			}
			for i, op := range ops {
				if op.Kind != tt.wantKinds[i] {
					t.Errorf("op %d kind = %s, want %s", i, op.Kind, tt.wantKinds[i])
				}
			}
		})
	}
}

// Ops must tile both token sequences with contiguous half-open ranges.
func TestAlign_Tiling(t *testing.T) {
	pairs := [][2]string{
		{"the quick brown fox", "the slow brown cat"},
		{"一二三四五", "一三五七"},
		{"a b c d", "d c b a"},
		{"", "entirely new"},
		{"entirely gone", ""},
	}

	for _, pair := range pairs {
		orig := Tokenize(pair[0])
		mod := Tokenize(pair[1])
		ops := Align(orig, mod)

		i, j := 0, 0
		for n, op := range ops {
			if op.I1 != i || op.J1 != j {
				t.Fatalf("%q -> %q: op %d starts at (%d,%d), want (%d,%d)",
					pair[0], pair[1], n, op.I1, op.J1, i, j)
			}
			if op.I2 < op.I1 || op.J2 < op.J1 {
				t.Fatalf("%q -> %q: op %d has inverted range %+v", pair[0], pair[1], n, op)
			}
			i, j = op.I2, op.J2
		}
		if i != len(orig) || j != len(mod) {
			t.Fatalf("%q -> %q: ops end at (%d,%d), want (%d,%d)",
				pair[0], pair[1], i, j, len(orig), len(mod))
		}
	}
}

// Among equally long matches the leftmost block in the original wins.
func TestAlign_LeftmostPreference(t *testing.T) {
	orig := Tokenize("b a b")
	mod := Tokenize("b")

	ops := Align(orig, mod)
	if len(ops) != 2 {
		t.Fatalf("ops = %+v, want equal then delete", ops)
	}
	if ops[0].Kind != OpEqual || ops[0].I1 != 0 || ops[0].I2 != 1 {
		t.Errorf("first op = %+v, want equal over leading token", ops[0])
	}
	if ops[1].Kind != OpDelete || ops[1].I1 != 1 || ops[1].I2 != len(orig) {
		t.Errorf("second op = %+v, want delete over trailing tokens", ops[1])
	}
}
