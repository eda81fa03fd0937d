// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

// BorderedBox decomposes an outer box into an inner box and per-axis
// border slices. The inner box is the outer shrunk by a margin; the border
// boxes rebuild the outer box around it, one slice per side per axis.
//
// The slices partition the outer box exactly: their union is the outer box
// and they are pairwise disjoint. Front-side slices are ordered axis 0
// outermost; back-side slices axis 0 innermost.
//
// Filters use this decomposition to split a domain into a "safely
// indexable" interior and borders which may require extrapolation.
type BorderedBox struct {
	inner  Box
	fronts []Box
	backs  []Box
}

// NewBorderedBox decomposes outer with the given margin. The margin's
// front components are typically non-positive and its back components
// non-negative, as for a filter window.
func NewBorderedBox(outer, margin Box) BorderedBox {
	inner := outer.ShrunkBy(margin)
	bb := BorderedBox{inner: inner.Clone()}
	current := inner.Clone()
	for i := 0; i < inner.Dimension(); i++ {
		if f := margin.front[i]; f < 0 {
			before := current.Clone()
			before.back[i] = current.front[i] - 1
			current.front[i] += f
			before.front[i] = current.front[i]
			if before.Size() > 0 {
				bb.fronts = append([]Box{before}, bb.fronts...)
			}
		}
		if b := margin.back[i]; b > 0 {
			after := current.Clone()
			after.front[i] = current.back[i] + 1
			current.back[i] += b
			after.back[i] = current.back[i]
			if after.Size() > 0 {
				bb.backs = append(bb.backs, after)
			}
		}
	}
	return bb
}

// Inner returns the inner box.
func (bb BorderedBox) Inner() Box { return bb.inner }

// Fronts returns the front-side border slices, outermost first.
func (bb BorderedBox) Fronts() []Box { return bb.fronts }

// Backs returns the back-side border slices, innermost first.
func (bb BorderedBox) Backs() []Box { return bb.backs }

// Apply calls borderFn on every front slice, innerFn on the inner box if
// it is not empty, then borderFn on every back slice. Each position of the
// outer box is visited by exactly one callback.
func (bb BorderedBox) Apply(innerFn, borderFn func(Box)) {
	for _, b := range bb.fronts {
		borderFn(b)
	}
	if bb.inner.Size() > 0 {
		innerFn(bb.inner)
	}
	for _, b := range bb.backs {
		borderFn(b)
	}
}
