// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "iter"

// Region is a set of positions which can be enumerated in row-major order.
// Box, Grid, Line, Mask and Sequence are the region types of this package.
type Region interface {
	// Dimension returns the number of axes.
	Dimension() int
	// Size returns the number of positions.
	Size() int
	// Bounds returns the axis-aligned bounding box.
	Bounds() Box
	// Contains reports whether p belongs to the region.
	Contains(p Position) bool
	// Translated returns the region shifted by v.
	Translated(v Position) Region
	// Positions iterates the region positions in row-major order.
	// The yielded position may be reused across iterations.
	Positions() iter.Seq[Position]
}

// Sequence is an arbitrary ordered list of positions, used as a region.
// Unlike the other regions, its iteration order is the list order.
type Sequence []Position

// Dimension returns the number of axes of the first position, or 0.
func (s Sequence) Dimension() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Size returns the number of positions.
func (s Sequence) Size() int { return len(s) }

// Bounds returns the tightest box containing every position.
func (s Sequence) Bounds() Box {
	if len(s) == 0 {
		return Box{front: Position{}, back: Position{}}
	}
	front := s[0].Clone()
	back := s[0].Clone()
	for _, p := range s[1:] {
		for i, c := range p {
			front[i] = min(front[i], c)
			back[i] = max(back[i], c)
		}
	}
	return Box{front: front, back: back}
}

// Contains reports whether p is one of the listed positions.
func (s Sequence) Contains(p Position) bool {
	for _, q := range s {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Translated returns the sequence with every position shifted by v.
func (s Sequence) Translated(v Position) Region {
	out := make(Sequence, len(s))
	for i, p := range s {
		out[i] = p.Plus(v)
	}
	return out
}

// Positions iterates the positions in list order.
func (s Sequence) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range s {
			if !yield(p) {
				return
			}
		}
	}
}
