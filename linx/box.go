// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "iter"

// Box is an axis-aligned region bounded by its front and back positions,
// both inclusive. A box with any back component smaller than the matching
// front component is empty.
type Box struct {
	front, back Position
}

// NewBox returns the box spanning front to back, both inclusive.
// front and back must have the same size.
func NewBox(front, back Position) Box {
	sameSize("box bounds", front, back)
	return Box{front: front.Clone(), back: back.Clone()}
}

// BoxFromShape returns the box of the given shape anchored at front:
// back = front + shape - 1.
func BoxFromShape(front, shape Position) Box {
	sameSize("box shape", front, shape)
	return Box{front: front.Clone(), back: front.Plus(shape).Dec()}
}

// BoxFromCenter returns the hypercube of half-width radius centered on
// center. Its side length is 2*radius + 1.
func BoxFromCenter(radius int, center Position) Box {
	return Box{front: center.MinusScalar(radius), back: center.PlusScalar(radius)}
}

// Dimension returns the number of axes.
func (b Box) Dimension() int { return len(b.front) }

// Front returns the front position. The returned slice is shared.
func (b Box) Front() Position { return b.front }

// Back returns the back position. The returned slice is shared.
func (b Box) Back() Position { return b.back }

// Shape returns back - front + 1.
func (b Box) Shape() Position {
	return b.back.Minus(b.front).Inc()
}

// Length returns the extent along the given axis.
func (b Box) Length(axis int) int {
	return b.back[axis] - b.front[axis] + 1
}

// Size returns the number of positions, or 0 if the box is empty.
func (b Box) Size() int {
	if len(b.front) == 0 {
		return 0
	}
	size := 1
	for i := range b.front {
		l := b.Length(i)
		if l <= 0 {
			return 0
		}
		size *= l
	}
	return size
}

// IsEmpty reports whether the box contains no position.
func (b Box) IsEmpty() bool { return b.Size() == 0 }

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Position) bool {
	for i, c := range p {
		if c < b.front[i] || c > b.back[i] {
			return false
		}
	}
	return true
}

// Intersection returns the overlap of b and o, which may be empty.
func (b Box) Intersection(o Box) Box {
	front := b.front.Clone()
	back := b.back.Clone()
	for i := range front {
		front[i] = max(front[i], o.front[i])
		back[i] = min(back[i], o.back[i])
	}
	return Box{front: front, back: back}
}

// Project returns b flattened along the given axis: the result has
// thickness 1 there, anchored at the front.
func (b Box) Project(axis int) Box {
	out := b.Clone()
	out.back[axis] = out.front[axis]
	return out
}

// Clone returns a deep copy of b.
func (b Box) Clone() Box {
	return Box{front: b.front.Clone(), back: b.back.Clone()}
}

// Translated returns b shifted by v.
func (b Box) Translated(v Position) Region {
	return b.TranslatedBox(v)
}

// TranslatedBox returns b shifted by v, typed as a Box.
func (b Box) TranslatedBox(v Position) Box {
	return Box{front: b.front.Plus(v), back: b.back.Plus(v)}
}

// TranslatedScalar returns b shifted by s along every axis.
func (b Box) TranslatedScalar(s int) Box {
	return Box{front: b.front.PlusScalar(s), back: b.back.PlusScalar(s)}
}

// GrownBy returns b dilated by a margin: the margin's front (usually
// non-positive) is added to the front and its back to the back.
func (b Box) GrownBy(margin Box) Box {
	return Box{front: b.front.Plus(margin.front), back: b.back.Plus(margin.back)}
}

// ShrunkBy returns b eroded by a margin, the inverse of GrownBy.
func (b Box) ShrunkBy(margin Box) Box {
	return Box{front: b.front.Minus(margin.front), back: b.back.Minus(margin.back)}
}

// Negated returns the box bounded by -front and -back.
func (b Box) Negated() Box {
	return Box{front: b.front.Negated(), back: b.back.Negated()}
}

// Equal reports whether b and o have the same bounds.
func (b Box) Equal(o Box) bool {
	return b.front.Equal(o.front) && b.back.Equal(o.back)
}

// Bounds returns the box itself.
func (b Box) Bounds() Box { return b }

// Positions iterates the box in row-major order: axis 0 varies fastest.
// The yielded position is reused across iterations; clone it to retain it.
func (b Box) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		it := b.Iter()
		for ; !it.Done(); it.Advance() {
			if !yield(it.Pos()) {
				return
			}
		}
	}
}

// Iter returns a cursor over the box positions in row-major order.
// A rank-0 box has no positions and starts out done.
func (b Box) Iter() *BoxIterator {
	it := &BoxIterator{box: b, cur: b.front.Clone()}
	if len(it.cur) > 0 && b.IsEmpty() {
		it.cur[0] = b.front[0] - 1
	}
	return it
}

// BoxIterator is a cursor over the positions of a box.
//
// Incrementing adds one to axis 0; on overflow past the back, the
// component resets to the front and the carry moves to the next axis.
// The end of iteration is encoded as the front position with its axis-0
// component decremented, so that two cursors over the same box compare
// equal whenever their positions do.
type BoxIterator struct {
	box Box
	cur Position
}

// Pos returns the current position. The slice is owned by the iterator.
func (it *BoxIterator) Pos() Position { return it.cur }

// Done reports whether the cursor is past the last position.
func (it *BoxIterator) Done() bool {
	return len(it.cur) == 0 || it.cur[0] < it.box.front[0]
}

// Advance moves the cursor to the next position in row-major order.
func (it *BoxIterator) Advance() {
	if len(it.cur) == 0 {
		return
	}
	if it.cur.Equal(it.box.back) {
		it.cur = it.box.front.Clone()
		it.cur[0]--
		return
	}
	it.cur[0]++
	for i := 0; i < len(it.cur)-1; i++ {
		if it.cur[i] > it.box.back[i] {
			it.cur[i] = it.box.front[i]
			it.cur[i+1]++
		}
	}
}

// Reset rewinds the cursor to the front position.
func (it *BoxIterator) Reset() {
	copy(it.cur, it.box.front)
	if len(it.cur) > 0 && it.box.IsEmpty() {
		it.cur[0] = it.box.front[0] - 1
	}
}

// Equal reports whether two cursors point at the same position.
func (it *BoxIterator) Equal(o *BoxIterator) bool {
	return it.cur.Equal(o.cur)
}
