// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "iter"

// Source is anything a patch can view: a raster or a read-only decorator
// of one (Extrapolator). At must accept any position the source defines a
// value for.
type Source[T Numeric] interface {
	Dimension() int
	Shape() Position
	Domain() Box
	At(p Position) T
}

// Patch is a view of a parent source restricted to a region. It owns no
// element storage and must not outlive its parent.
//
// The indexing strategy is fixed at construction from the parent and
// region kinds: stride-based for Box, Grid and Line regions of a raster,
// offset-based for Mask and Sequence regions of a raster, position-based
// for any region of an extrapolator. Stride and offset caches are
// relative to the region front, so translation is O(1) and leaves them
// untouched.
//
// A patch is mutable when its parent is a raster.
type Patch[T Numeric] struct {
	parent Source[T]
	raster *Raster[T] // nil when the parent is a decorator
	region Region
	idx    indexer
}

func newPatch[T Numeric](parent Source[T], raster *Raster[T], region Region) *Patch[T] {
	p := &Patch[T]{parent: parent, raster: raster, region: region}
	if raster == nil {
		return p
	}
	shape := raster.Shape()
	switch rg := region.(type) {
	case Box:
		p.idx = newBoxIndexer(shape, rg)
	case Grid:
		p.idx = newGridIndexer(shape, rg)
	case Line:
		p.idx = newLineIndexer(shape, rg)
	case *Mask:
		p.idx = newOffsetIndexer(shape, rg)
	case Sequence:
		p.idx = newOffsetIndexer(shape, rg)
	}
	return p
}

// Parent returns the viewed source.
func (p *Patch[T]) Parent() Source[T] { return p.parent }

// Raster returns the parent raster, or nil when the parent is a
// decorator.
func (p *Patch[T]) Raster() *Raster[T] { return p.raster }

// Region returns the patch region.
func (p *Patch[T]) Region() Region { return p.region }

// Dimension returns the number of axes.
func (p *Patch[T]) Dimension() int { return p.region.Dimension() }

// Size returns the number of elements.
func (p *Patch[T]) Size() int { return p.region.Size() }

// Mutable reports whether the patch can write through to its parent.
func (p *Patch[T]) Mutable() bool { return p.raster != nil }

// Translate shifts the region by v without touching storage or caches.
func (p *Patch[T]) Translate(v Position) *Patch[T] {
	p.region = p.region.Translated(v)
	return p
}

// TranslateBack undoes Translate(v).
func (p *Patch[T]) TranslateBack(v Position) *Patch[T] {
	p.region = p.region.Translated(v.Negated())
	return p
}

// At returns the parent value at an absolute position.
func (p *Patch[T]) At(pos Position) T {
	return p.parent.At(pos)
}

// Values iterates the patch elements in region order.
func (p *Patch[T]) Values() iter.Seq[T] {
	if p.idx != nil {
		data := p.raster.data
		base := IndexOf(p.raster.shape, p.region.Bounds().front)
		return func(yield func(T) bool) {
			for i := range p.idx.indices(base) {
				if !yield(data[i]) {
					return
				}
			}
		}
	}
	return func(yield func(T) bool) {
		for pos := range p.region.Positions() {
			if !yield(p.parent.At(pos)) {
				return
			}
		}
	}
}

// Items iterates position-value pairs in region order. The yielded
// position may be reused across iterations.
func (p *Patch[T]) Items() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for pos := range p.region.Positions() {
			if !yield(pos, p.parent.At(pos)) {
				return
			}
		}
	}
}

// AppendTo appends the patch values in region order to dst and returns
// the extended slice.
func (p *Patch[T]) AppendTo(dst []T) []T {
	for v := range p.Values() {
		dst = append(dst, v)
	}
	return dst
}

// Fill sets every element to value. The patch must be mutable.
func (p *Patch[T]) Fill(value T) *Patch[T] {
	p.mutate(func(T) T { return value })
	return p
}

// Apply replaces every element e with fn(e). The patch must be mutable.
func (p *Patch[T]) Apply(fn func(T) T) *Patch[T] {
	p.mutate(fn)
	return p
}

// Generate sets every element to fn(), in region order. The patch must
// be mutable.
func (p *Patch[T]) Generate(fn func() T) *Patch[T] {
	p.mutate(func(T) T { return fn() })
	return p
}

func (p *Patch[T]) mutate(fn func(T) T) {
	if p.raster == nil {
		panic("linx: patch of a read-only source")
	}
	data := p.raster.data
	if p.idx != nil {
		base := IndexOf(p.raster.shape, p.region.Bounds().front)
		for i := range p.idx.indices(base) {
			data[i] = fn(data[i])
		}
		return
	}
	for pos := range p.region.Positions() {
		i := IndexOf(p.raster.shape, pos)
		data[i] = fn(data[i])
	}
}

// SharesIndexing reports whether p and o enumerate the same data
// indices. Comparing the cached offsets of patches with distinct
// parents is not implemented.
func (p *Patch[T]) SharesIndexing(o *Patch[T]) (bool, error) {
	if p.parent != o.parent {
		return false, &NotImplementedError{Op: "indexing comparison across parents"}
	}
	return p.region.Bounds().Equal(o.region.Bounds()) && p.region.Size() == o.region.Size(), nil
}

// Rasterize copies the patch into a new owning raster of the region's
// bounding shape, anchored at the bounding front. Positions of the
// bounding box outside the region are left at zero.
func (p *Patch[T]) Rasterize() *Raster[T] {
	bounds := p.region.Bounds()
	out := New[T](bounds.Shape()...)
	for pos, v := range p.Items() {
		out.Set(pos.Minus(bounds.front), v)
	}
	return out
}

// Contiguous reports whether the patch elements form one contiguous
// span of the parent's storage: a unit-step axis-0 line, or a box which
// spans the parent fully on every axis below its last non-unit axis.
func (p *Patch[T]) Contiguous() bool {
	if p.raster == nil {
		return false
	}
	switch rg := p.region.(type) {
	case Line:
		return rg.Axis() == 0 && rg.Step() == 1
	case Box:
		last := 0
		for i := rg.Dimension() - 1; i > 0; i-- {
			if rg.Length(i) > 1 {
				last = i
				break
			}
		}
		for i := 0; i < last; i++ {
			if rg.front[i] != 0 || rg.back[i] != p.raster.shape[i]-1 {
				return false
			}
		}
		return true
	}
	return false
}
