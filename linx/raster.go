// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

// Raster is a dense N-dimensional array with row-major layout: the linear
// index of a position p is the sum of p[i] * stride[i], where stride[0] is
// 1 and stride[i+1] is stride[i] * shape[i].
//
// Storage is held by one of three holder kinds: owning (New, NewAligned),
// or borrowing externally owned memory (Wrap, WrapAligned). A borrowing
// raster requires the underlying storage to outlive it.
//
// Position-based accessors (At, Set) are unchecked fast paths; the checked
// counterparts (AtPosition, AtIndex) validate bounds and support negative
// from-the-end indices.
type Raster[T Numeric] struct {
	shape    Position
	data     []T
	borrowed bool
	aligned  int // requested alignment in bytes, 0 if none
}

// New returns an owning raster of the given shape, zero-initialized.
func New[T Numeric](shape ...int) *Raster[T] {
	s := Position(shape).Clone()
	return &Raster[T]{shape: s, data: make([]T, ShapeSize(s))}
}

// NewAligned returns an owning raster whose storage is aligned to the
// given number of bytes. A non-positive alignment selects the host
// default (at least 16).
func NewAligned[T Numeric](alignment int, shape ...int) *Raster[T] {
	if alignment <= 0 {
		alignment = DefaultAlignment()
	}
	s := Position(shape).Clone()
	return &Raster[T]{shape: s, data: alignedSlice[T](ShapeSize(s), alignment), aligned: alignment}
}

// Wrap returns a borrowing raster over externally owned data. The data
// length must match the shape size.
func Wrap[T Numeric](data []T, shape ...int) (*Raster[T], error) {
	s := Position(shape).Clone()
	if len(data) != ShapeSize(s) {
		return nil, &SizeMismatchError{Name: "raster data", Expected: ShapeSize(s), Actual: len(data)}
	}
	return &Raster[T]{shape: s, data: data, borrowed: true}, nil
}

// WrapAligned is Wrap plus validation that the data meets the requested
// byte alignment. It fails with an *AlignmentError otherwise.
func WrapAligned[T Numeric](data []T, alignment int, shape ...int) (*Raster[T], error) {
	if alignment <= 0 {
		alignment = DefaultAlignment()
	}
	r, err := Wrap(data, shape...)
	if err != nil {
		return nil, err
	}
	if actual := AlignmentOf(data); actual < alignment {
		return nil, &AlignmentError{Required: alignment, Actual: actual}
	}
	r.aligned = alignment
	return r, nil
}

// Shape returns the raster shape. The returned slice is shared.
func (r *Raster[T]) Shape() Position { return r.shape }

// Dimension returns the number of axes.
func (r *Raster[T]) Dimension() int { return len(r.shape) }

// Size returns the number of elements.
func (r *Raster[T]) Size() int { return len(r.data) }

// Length returns the extent along the given axis.
func (r *Raster[T]) Length(axis int) int { return r.shape[axis] }

// Data returns the contiguous backing storage in row-major order.
func (r *Raster[T]) Data() []T { return r.data }

// Borrowed reports whether the storage is externally owned.
func (r *Raster[T]) Borrowed() bool { return r.borrowed }

// Alignment returns the requested storage alignment in bytes, 0 if none.
func (r *Raster[T]) Alignment() int { return r.aligned }

// Domain returns the box from zero to shape - 1.
func (r *Raster[T]) Domain() Box {
	return Box{front: make(Position, len(r.shape)), back: r.shape.Clone().Dec()}
}

// Contains reports whether p lies inside the domain.
func (r *Raster[T]) Contains(p Position) bool {
	for i, c := range p {
		if c < 0 || c >= r.shape[i] {
			return false
		}
	}
	return true
}

// Index returns the row-major linear index of p. Short positions are
// padded with zeros.
func (r *Raster[T]) Index(p Position) int {
	return IndexOf(r.shape, p)
}

// PositionOf returns the position of linear index i, the inverse of Index.
func (r *Raster[T]) PositionOf(i int) Position {
	return PositionAt(r.shape, i)
}

// At returns the element at p without bounds checking each coordinate.
// Callers must pass an in-domain position.
func (r *Raster[T]) At(p Position) T {
	return r.data[IndexOf(r.shape, p)]
}

// Set assigns the element at p. Same contract as At.
func (r *Raster[T]) Set(p Position, v T) {
	r.data[IndexOf(r.shape, p)] = v
}

// AtIndex returns the element at linear index i, with bounds checking.
// Negative indices count from the end.
func (r *Raster[T]) AtIndex(i int) (T, error) {
	var zero T
	if i < 0 {
		i += len(r.data)
	}
	if i < 0 || i >= len(r.data) {
		return zero, &OutOfBoundsError{Name: "index", Value: i, Min: -len(r.data), Max: len(r.data) - 1}
	}
	return r.data[i], nil
}

// AtPosition returns the element at p, with per-axis bounds checking.
// Negative coordinates count from the end of their axis; missing trailing
// coordinates are zero.
func (r *Raster[T]) AtPosition(p Position) (T, error) {
	var zero T
	if len(p) > len(r.shape) {
		return zero, &SizeMismatchError{Name: "position rank", Expected: len(r.shape), Actual: len(p)}
	}
	index := 0
	stride := 1
	for i, c := range p {
		if c < 0 {
			c += r.shape[i]
		}
		if c < 0 || c >= r.shape[i] {
			return zero, &OutOfBoundsError{Name: "position", Value: p[i], Min: -r.shape[i], Max: r.shape[i] - 1}
		}
		index += c * stride
		stride *= r.shape[i]
	}
	return r.data[index], nil
}

// Copy returns an owning deep copy of r.
func (r *Raster[T]) Copy() *Raster[T] {
	out := &Raster[T]{shape: r.shape.Clone(), data: make([]T, len(r.data))}
	copy(out.data, r.data)
	return out
}

// MoveTo transfers the storage to dest, which takes over the shape as
// well. r is left empty but valid.
func (r *Raster[T]) MoveTo(dest *Raster[T]) {
	dest.shape = r.shape
	dest.data = r.data
	dest.borrowed = r.borrowed
	dest.aligned = r.aligned
	r.shape = make(Position, len(dest.shape))
	r.data = nil
	r.borrowed = false
	r.aligned = 0
}

// Section returns the slice fixing the last axis to k, as a borrowing
// raster of rank N-1 over the same storage.
func (r *Raster[T]) Section(k int) *Raster[T] {
	n := len(r.shape) - 1
	stride := ShapeStride(r.shape, n)
	return &Raster[T]{
		shape:    r.shape.Slice(n),
		data:     r.data[k*stride : (k+1)*stride : (k+1)*stride],
		borrowed: true,
	}
}

// Patch returns the view of r restricted to region.
func (r *Raster[T]) Patch(region Region) *Patch[T] {
	return newPatch[T](r, r, region)
}

// Profile returns the line patch along the given axis anchored at anchor,
// whose coordinate along that axis is ignored.
func (r *Raster[T]) Profile(axis int, anchor Position) *Patch[T] {
	front := anchor.Extend(make(Position, len(r.shape)))
	front[axis] = 0
	return r.Patch(NewLine(axis, front, r.shape[axis]-1, 1))
}

// Row returns the axis-0 profile at anchor: Profile(0, anchor).
func (r *Raster[T]) Row(anchor Position) *Patch[T] {
	return r.Profile(0, anchor)
}

// Profiles returns the patches of all lines along the given axis, in
// row-major order of their anchors. The patches are disjoint and cover
// the raster exactly once.
func (r *Raster[T]) Profiles(axis int) []*Patch[T] {
	plane := r.Domain().Project(axis)
	out := make([]*Patch[T], 0, plane.Size())
	for p := range plane.Positions() {
		front := p.Clone()
		out = append(out, r.Patch(NewLine(axis, front, r.shape[axis]-1, 1)))
	}
	return out
}

// Rows returns the patches of all axis-0 lines: Profiles(0).
func (r *Raster[T]) Rows() []*Patch[T] {
	return r.Profiles(0)
}

// Tiles returns the patches of the tiling of the domain by boxes of the
// given shape, clipped at the domain edges. Tiles are disjoint and cover
// the raster exactly once, in row-major order of their fronts.
func (r *Raster[T]) Tiles(shape Position) []*Patch[T] {
	domain := r.Domain()
	grid := NewGrid(domain, shape)
	out := make([]*Patch[T], 0, grid.Size())
	for front := range grid.Positions() {
		tile := BoxFromShape(front.Clone(), shape).Intersection(domain)
		out = append(out, r.Patch(tile))
	}
	return out
}

// Sections returns the patches slicing the domain along the last axis
// into chunks of the given thickness; the final chunk may be thinner.
func (r *Raster[T]) Sections(thickness int) []*Patch[T] {
	if thickness <= 0 {
		thickness = 1
	}
	n := len(r.shape) - 1
	out := make([]*Patch[T], 0, (r.shape[n]+thickness-1)/thickness)
	for k := 0; k < r.shape[n]; k += thickness {
		front := make(Position, len(r.shape))
		front[n] = k
		back := r.shape.Clone().Dec()
		back[n] = min(k+thickness-1, r.shape[n]-1)
		out = append(out, r.Patch(NewBox(front, back)))
	}
	return out
}
