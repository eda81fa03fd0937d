// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "iter"

// Line is a one-dimensional run of positions along a fixed axis, with a
// step. All other axes have unit thickness.
type Line struct {
	axis  int
	front Position
	back  int // inclusive coordinate along axis
	step  int
}

// NewLine returns the line along the given axis, from front to the
// position whose axis coordinate is back, striding by step.
func NewLine(axis int, front Position, back, step int) Line {
	if axis < 0 || axis >= len(front) {
		panic(&OutOfBoundsError{Name: "line axis", Value: axis, Min: 0, Max: len(front) - 1})
	}
	if step <= 0 {
		panic(&OutOfBoundsError{Name: "line step", Value: step, Min: 1, Max: Inf[int]()})
	}
	if back >= front[axis] {
		back -= (back - front[axis]) % step
	}
	return Line{axis: axis, front: front.Clone(), back: back, step: step}
}

// Axis returns the iteration axis.
func (l Line) Axis() int { return l.axis }

// Step returns the stride along the axis.
func (l Line) Step() int { return l.step }

// Front returns the first position.
func (l Line) Front() Position { return l.front }

// Dimension returns the number of axes.
func (l Line) Dimension() int { return len(l.front) }

// Size returns the number of positions.
func (l Line) Size() int {
	if l.back < l.front[l.axis] {
		return 0
	}
	return (l.back-l.front[l.axis])/l.step + 1
}

// Bounds returns the bounding box.
func (l Line) Bounds() Box {
	back := l.front.Clone()
	back[l.axis] = l.back
	return Box{front: l.front.Clone(), back: back}
}

// Shape returns the bounding shape: all ones except along the axis.
func (l Line) Shape() Position {
	out := Ones[int](len(l.front))
	out[l.axis] = l.Size()
	return out
}

// Contains reports whether p lies on the line.
func (l Line) Contains(p Position) bool {
	for i, c := range p {
		if i == l.axis {
			if c < l.front[i] || c > l.back || (c-l.front[i])%l.step != 0 {
				return false
			}
		} else if c != l.front[i] {
			return false
		}
	}
	return true
}

// Translated returns the line shifted by v.
func (l Line) Translated(v Position) Region {
	return Line{axis: l.axis, front: l.front.Plus(v), back: l.back + v[l.axis], step: l.step}
}

// Positions iterates the line positions front to back.
// The yielded position is reused across iterations.
func (l Line) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		cur := l.front.Clone()
		for c := l.front[l.axis]; c <= l.back; c += l.step {
			cur[l.axis] = c
			if !yield(cur) {
				return
			}
		}
	}
}
