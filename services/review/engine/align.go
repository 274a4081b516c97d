// Copyright (C) 2025 Redmark AI (oss@redmark.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// =============================================================================
// Edit Operations
// =============================================================================

// OpKind classifies a run of the edit script.
type OpKind string

const (
	// OpEqual is a run present in both sequences.
	OpEqual OpKind = "equal"

	// OpDelete is a run present only in the original sequence.
	OpDelete OpKind = "delete"

	// OpInsert is a run present only in the modified sequence.
	OpInsert OpKind = "insert"

	// OpReplace is a deletion immediately followed by an insertion over
	// the same boundary.
	OpReplace OpKind = "replace"
)

// String returns the string representation of the kind.
func (k OpKind) String() string {
	return string(k)
}

// EditOp is a single run of the edit script mapping the original token
// sequence to the modified one.
//
// Ranges are half-open token indices. Consecutive ops tile both
// sequences: op[n].I2 == op[n+1].I1 and op[n].J2 == op[n+1].J1.
type EditOp struct {
	// Kind is the run classification.
	Kind OpKind

	// I1, I2 bound the run in the original token sequence.
	I1, I2 int

	// J1, J2 bound the run in the modified token sequence.
	J1, J2 int
}

// matchBlock is a maximal run of identical tokens found during alignment.
type matchBlock struct {
	a, b, size int
}

// =============================================================================
// Aligner
// =============================================================================

// Align computes the edit script between two token sequences.
//
// Description:
//
//	Recursively finds the longest block of tokens common to both
//	sequences, keeps it as an Equal run, and recurses on the left and
//	right remainders. Tokens left unmatched on one side only become
//	Delete or Insert runs; unmatched tokens on both sides at the same
//	boundary become a single Replace run.
//
//	Ties between equally long blocks are broken toward the smallest
//	starting index in the original sequence, then the smallest in the
//	modified sequence, so the result is deterministic.
//
// Inputs:
//
//	orig - Token spans of the original text.
//	mod - Token spans of the modified text.
//
// Outputs:
//
//	[]EditOp - The edit script. Empty when both inputs are empty.
func Align(orig, mod []Span) []EditOp {
	blocks := matchingBlocks(orig, mod)

	var ops []EditOp
	i, j := 0, 0
	for _, blk := range blocks {
		switch {
		case i < blk.a && j < blk.b:
			ops = append(ops, EditOp{Kind: OpReplace, I1: i, I2: blk.a, J1: j, J2: blk.b})
		case i < blk.a:
			ops = append(ops, EditOp{Kind: OpDelete, I1: i, I2: blk.a, J1: j, J2: j})
		case j < blk.b:
			ops = append(ops, EditOp{Kind: OpInsert, I1: i, I2: i, J1: j, J2: blk.b})
		}
		if blk.size > 0 {
			ops = append(ops, EditOp{
				Kind: OpEqual,
				I1:   blk.a, I2: blk.a + blk.size,
				J1: blk.b, J2: blk.b + blk.size,
			})
		}
		i, j = blk.a+blk.size, blk.b+blk.size
	}
	return ops
}

// matchingBlocks returns the matched regions in both sequences, in
// order, terminated by a zero-size sentinel at (len(orig), len(mod)).
func matchingBlocks(orig, mod []Span) []matchBlock {
	var blocks []matchBlock

	// Iterative worklist instead of recursion so pathological inputs
	// cannot blow the stack.
	type region struct{ alo, ahi, blo, bhi int }
	queue := []region{{0, len(orig), 0, len(mod)}}

	for len(queue) > 0 {
		r := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		blk := longestMatch(orig, mod, r.alo, r.ahi, r.blo, r.bhi)
		if blk.size == 0 {
			continue
		}
		blocks = append(blocks, blk)
		queue = append(queue,
			region{r.alo, blk.a, r.blo, blk.b},
			region{blk.a + blk.size, r.ahi, blk.b + blk.size, r.bhi},
		)
	}

	sortBlocks(blocks)
	return append(blocks, matchBlock{a: len(orig), b: len(mod)})
}

// longestMatch finds the longest run of identical tokens within
// orig[alo:ahi] and mod[blo:bhi].
//
// Among equally long runs it prefers the one starting earliest in the
// original sequence, then earliest in the modified sequence.
func longestMatch(orig, mod []Span, alo, ahi, blo, bhi int) matchBlock {
	// Index modified token text -> positions, so the inner loop only
	// visits actual matches.
	positions := make(map[string][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		positions[mod[j].Text] = append(positions[mod[j].Text], j)
	}

	best := matchBlock{a: alo, b: blo}
	// lengths[j] is the length of the match ending at (i-1, j-1).
	lengths := make(map[int]int)

	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range positions[orig[i].Text] {
			k := lengths[j-1] + 1
			next[j] = k
			// Strict inequality keeps the leftmost longest block:
			// earlier starts complete earlier in the scan.
			if k > best.size {
				best = matchBlock{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		lengths = next
	}
	return best
}

// sortBlocks orders blocks by position in the original sequence.
// Blocks never overlap, so ordering by a alone is sufficient.
func sortBlocks(blocks []matchBlock) {
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0 && blocks[j].a < blocks[j-1].a; j-- {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
		}
	}
}
