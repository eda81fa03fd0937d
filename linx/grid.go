// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "iter"

// Grid is a regularly strided subset of a box: the positions
// front + k*step for every k such that the position stays inside the box.
// The back is clamped at construction so that every axis span is an exact
// multiple of its step.
type Grid struct {
	box  Box
	step Position
}

// NewGrid returns the grid over box with the given per-axis steps.
// Steps must be strictly positive.
func NewGrid(box Box, step Position) Grid {
	sameSize("grid step", box.front, step)
	for _, s := range step {
		if s <= 0 {
			panic(&OutOfBoundsError{Name: "grid step", Value: s, Min: 1, Max: Inf[int]()})
		}
	}
	back := box.back.Clone()
	for i := range back {
		back[i] -= (box.Length(i) - 1) % step[i]
	}
	return Grid{box: Box{front: box.front.Clone(), back: back}, step: step.Clone()}
}

// NewGridScalar returns the grid over box with the same step on every axis.
func NewGridScalar(box Box, step int) Grid {
	return NewGrid(box, make(Position, box.Dimension()).Fill(step))
}

// Dimension returns the number of axes.
func (g Grid) Dimension() int { return g.box.Dimension() }

// Box returns the bounding box (with the clamped back).
func (g Grid) Box() Box { return g.box }

// Front returns the first lattice position.
func (g Grid) Front() Position { return g.box.front }

// Back returns the last lattice position.
func (g Grid) Back() Position { return g.box.back }

// Step returns the per-axis steps.
func (g Grid) Step() Position { return g.step }

// Shape returns the number of lattice nodes along each axis.
func (g Grid) Shape() Position {
	out := g.box.Shape()
	for i := range out {
		out[i] = (out[i] + g.step[i] - 1) / g.step[i]
	}
	return out
}

// Length returns the number of nodes along the given axis.
func (g Grid) Length(axis int) int {
	return (g.box.Length(axis) + g.step[axis] - 1) / g.step[axis]
}

// Size returns the number of lattice nodes.
func (g Grid) Size() int {
	if g.box.IsEmpty() {
		return 0
	}
	size := 1
	for i := range g.step {
		size *= g.Length(i)
	}
	return size
}

// Bounds returns the bounding box.
func (g Grid) Bounds() Box { return g.box }

// Contains reports whether p is a lattice node.
func (g Grid) Contains(p Position) bool {
	if !g.box.Contains(p) {
		return false
	}
	for i, c := range p {
		if (c-g.box.front[i])%g.step[i] != 0 {
			return false
		}
	}
	return true
}

// Translated returns the grid shifted by v.
func (g Grid) Translated(v Position) Region {
	return Grid{box: g.box.TranslatedBox(v), step: g.step.Clone()}
}

// Intersection returns the grid restricted to a box: the front moves
// forward to the first lattice node inside the box and the back moves
// backward to the last one.
func (g Grid) Intersection(box Box) Grid {
	front := g.box.front.Clone()
	back := g.box.back.Clone()
	for i := range front {
		if d := box.front[i] - front[i]; d > 0 {
			front[i] += (d + g.step[i] - 1) / g.step[i] * g.step[i]
		}
		back[i] = min(back[i], box.back[i])
		back[i] -= emod(back[i]-front[i], g.step[i])
	}
	return Grid{box: Box{front: front, back: back}, step: g.step.Clone()}
}

// Positions iterates the lattice nodes in row-major order.
// The yielded position is reused across iterations.
func (g Grid) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if g.Size() == 0 {
			return
		}
		cur := g.box.front.Clone()
		for {
			if !yield(cur) {
				return
			}
			i := 0
			for ; i < len(cur); i++ {
				cur[i] += g.step[i]
				if cur[i] <= g.box.back[i] {
					break
				}
				cur[i] = g.box.front[i]
			}
			if i == len(cur) {
				return
			}
		}
	}
}
