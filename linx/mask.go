// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "iter"

// Mask is a box with a boolean flag per cell. The region it denotes is the
// subset of in-box positions whose flag is set. Flags are stored as a
// dense row-major raster of booleans over the box shape.
type Mask struct {
	box   Box
	flags []bool
}

// NewMask returns a mask over box with every flag set to value.
func NewMask(box Box, value bool) *Mask {
	flags := make([]bool, box.Size())
	if value {
		for i := range flags {
			flags[i] = true
		}
	}
	return &Mask{box: box.Clone(), flags: flags}
}

// Ball returns the mask of the L^p ball of the given radius around center,
// for p in {0, 1, 2}: the set of positions q inside the bounding hypercube
// such that Norm(q - center, p) <= radius^p.
func Ball(p int, radius int, center Position) *Mask {
	box := BoxFromCenter(radius, center)
	m := NewMask(box, false)
	threshold := 1
	for i := 0; i < p; i++ {
		threshold *= radius
	}
	i := 0
	for q := range box.Positions() {
		if Norm(q.Minus(center), p) <= threshold {
			m.flags[i] = true
		}
		i++
	}
	return m
}

// Dimension returns the number of axes.
func (m *Mask) Dimension() int { return m.box.Dimension() }

// Box returns the bounding box.
func (m *Mask) Box() Box { return m.box }

// Bounds returns the bounding box.
func (m *Mask) Bounds() Box { return m.box }

// Size returns the number of set flags.
func (m *Mask) Size() int {
	count := 0
	for _, f := range m.flags {
		if f {
			count++
		}
	}
	return count
}

// Contains reports whether p is inside the box with its flag set.
func (m *Mask) Contains(p Position) bool {
	if !m.box.Contains(p) {
		return false
	}
	return m.flags[IndexOf(m.box.Shape(), p.Minus(m.box.front))]
}

// Set assigns the flag at p, which must be inside the box.
func (m *Mask) Set(p Position, value bool) {
	m.flags[IndexOf(m.box.Shape(), p.Minus(m.box.front))] = value
}

// Translated returns the mask shifted by v. Flags are shared.
func (m *Mask) Translated(v Position) Region {
	return &Mask{box: m.box.TranslatedBox(v), flags: m.flags}
}

// IntersectBox restricts the mask to its overlap with box: the bounding
// box shrinks and flags outside the new box are dropped.
func (m *Mask) IntersectBox(box Box) *Mask {
	inter := m.box.Intersection(box)
	flags := make([]bool, inter.Size())
	shape := m.box.Shape()
	i := 0
	for p := range inter.Positions() {
		flags[i] = m.flags[IndexOf(shape, p.Minus(m.box.front))]
		i++
	}
	m.box = inter
	m.flags = flags
	return m
}

// Positions iterates the set positions in row-major order, skipping
// cleared flags. The yielded position is reused across iterations.
func (m *Mask) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		it := m.box.Iter()
		for i := 0; !it.Done(); it.Advance() {
			if m.flags[i] && !yield(it.Pos()) {
				return
			}
			i++
		}
	}
}
