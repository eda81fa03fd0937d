// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

// Package filters provides spatial filtering over rasters: correlation and
// convolution kernels, rank filters (median, erosion, dilation), the mean
// filter, and separable kernel pipelines.
//
// A Filter pairs a window, anchored at the origin of the parent's frame,
// with an operation reducing the window's values to one output value. The
// window is a Box or Mask; its values are gathered in row-major order.
//
// Filtering an extrapolated raster splits the domain with a bordered
// decomposition: the interior, where every window sample is in-domain, is
// read straight from the raw raster through precomputed linear offsets,
// and only the border slices go through the extrapolator. Both passes
// write the same output and together visit each position exactly once.
package filters

import (
	"github.com/linxgo/linx/linx"
)

// Op reduces the values of one window, gathered in row-major window
// order, to a single output value. The slice is reused across calls.
type Op[T, U linx.Numeric] func(values []T) U

// Filter applies an Op at every position of a domain, reading the window
// around each position.
//
// A Filter keeps per-application scratch buffers, so it must not be
// shared between goroutines; Clone one per worker instead.
type Filter[T, U linx.Numeric] struct {
	window  linx.Region
	box     linx.Box
	offsets []linx.Position
	op      Op[T, U]
	values  []T
	pos     linx.Position
}

// New returns the filter applying op over the given window. The window
// is a Box or Mask anchored at the origin.
func New[T, U linx.Numeric](window linx.Region, op Op[T, U]) *Filter[T, U] {
	f := &Filter[T, U]{
		window: window,
		box:    window.Bounds(),
		op:     op,
	}
	for p := range window.Positions() {
		f.offsets = append(f.offsets, p.Clone())
	}
	f.values = make([]T, len(f.offsets))
	f.pos = make(linx.Position, window.Dimension())
	return f
}

// Window returns the filter window.
func (f *Filter[T, U]) Window() linx.Region { return f.window }

// Clone returns a filter sharing the window and operation but owning its
// scratch buffers, for use from another goroutine.
func (f *Filter[T, U]) Clone() *Filter[T, U] {
	out := *f
	out.values = make([]T, len(f.offsets))
	out.pos = make(linx.Position, len(f.pos))
	return &out
}

// At computes the filter output at one position. Every window sample
// around p must be defined by src.
func (f *Filter[T, U]) At(src linx.Source[T], p linx.Position) U {
	for i, off := range f.offsets {
		for a := range f.pos {
			f.pos[a] = p[a] + off[a]
		}
		f.values[i] = src.At(f.pos)
	}
	return f.op(f.values)
}

// AtPositions computes the filter output at each listed position, in
// order.
func (f *Filter[T, U]) AtPositions(src linx.Source[T], positions linx.Sequence) []U {
	out := make([]U, 0, len(positions))
	for _, p := range positions {
		out = append(out, f.At(src, p))
	}
	return out
}

// Crop filters a raw raster over the positions whose windows lie fully
// in-domain, and returns the cropped result: its shape is the input
// shape shrunk by the window extents, anchored at the first such
// position.
func (f *Filter[T, U]) Crop(in *linx.Raster[T]) *linx.Raster[U] {
	inner := in.Domain().ShrunkBy(f.box)
	out := linx.New[U](inner.Shape()...)
	f.rawPass(in, inner, out, inner.Front())
	return out
}

// Run filters an extrapolated raster over its full domain using the
// bordered decomposition.
func (f *Filter[T, U]) Run(in *linx.Extrapolator[T]) *linx.Raster[U] {
	raw := in.Raster()
	out := linx.New[U](raw.Shape()...)
	origin := linx.Zeros[int](raw.Dimension())
	bb := linx.NewBorderedBox(raw.Domain(), f.box)
	bb.Apply(
		func(inner linx.Box) { f.rawPass(raw, inner, out, origin) },
		func(border linx.Box) { f.extPass(in, border, out, origin) },
	)
	return out
}

// Apply filters any source over an arbitrary region, position by
// position, into a raster of the region's bounding shape. It is the
// unoptimized general form behind Crop and Run.
func (f *Filter[T, U]) Apply(src linx.Source[T], region linx.Region) *linx.Raster[U] {
	bounds := region.Bounds()
	out := linx.New[U](bounds.Shape()...)
	front := bounds.Front()
	for p := range region.Positions() {
		out.Set(p.Minus(front), f.At(src, p))
	}
	return out
}

// rawPass filters the positions of region reading the raw raster data
// through precomputed linear offsets, with no per-sample bounds logic.
// Output positions are shifted by -anchor.
func (f *Filter[T, U]) rawPass(in *linx.Raster[T], region linx.Box, out *linx.Raster[U], anchor linx.Position) {
	if region.IsEmpty() {
		return
	}
	shape := in.Shape()
	linear := make([]int, len(f.offsets))
	for i, off := range f.offsets {
		linear[i] = linx.IndexOf(shape, off)
	}
	data := in.Data()
	outShape := out.Shape()
	outData := out.Data()
	for p := range region.Positions() {
		base := linx.IndexOf(shape, p)
		for i, off := range linear {
			f.values[i] = data[base+off]
		}
		for a := range f.pos {
			f.pos[a] = p[a] - anchor[a]
		}
		outData[linx.IndexOf(outShape, f.pos)] = f.op(f.values)
	}
}

// extPass filters the positions of region through the extrapolator.
func (f *Filter[T, U]) extPass(in *linx.Extrapolator[T], region linx.Box, out *linx.Raster[U], anchor linx.Position) {
	outShape := out.Shape()
	outData := out.Data()
	q := make(linx.Position, len(anchor))
	for p := range region.Positions() {
		v := f.At(in, p)
		for a := range q {
			q[a] = p[a] - anchor[a]
		}
		outData[linx.IndexOf(outShape, q)] = v
	}
}

// CorrelateSparseTo would scatter the filter output over a sparse
// position set held by the caller. It is not implemented.
func (f *Filter[T, U]) CorrelateSparseTo(src linx.Source[T], positions linx.Sequence, out []U) error {
	return &linx.NotImplementedError{Op: "sparse correlation"}
}

// Pipeline chains filters of matching element type: the output of each
// pass feeds the next.
type Pipeline[T linx.Numeric] []*Filter[T, T]

// Compose builds a pipeline from the given passes, applied first to
// last.
func Compose[T linx.Numeric](passes ...*Filter[T, T]) Pipeline[T] {
	return Pipeline[T](passes)
}

// Run applies every pass over the full domain, re-decorating the
// intermediate rasters with the input's extrapolation method.
func (pl Pipeline[T]) Run(in *linx.Extrapolator[T]) *linx.Raster[T] {
	cur := in
	var out *linx.Raster[T]
	for _, f := range pl {
		out = f.Run(cur)
		cur = in.Rebind(out)
	}
	if out == nil {
		return in.Raster().Copy()
	}
	return out
}

// Crop applies every pass on raw data, shrinking the domain by each
// window in turn.
func (pl Pipeline[T]) Crop(in *linx.Raster[T]) *linx.Raster[T] {
	out := in
	for _, f := range pl {
		out = f.Crop(out)
	}
	if out == in {
		return in.Copy()
	}
	return out
}

// Window returns the combined margin of the pipeline: the sum of the
// per-pass window bounds.
func (pl Pipeline[T]) Window() linx.Box {
	if len(pl) == 0 {
		return linx.Box{}
	}
	acc := pl[0].box.Clone()
	for _, f := range pl[1:] {
		acc = acc.GrownBy(f.box)
	}
	return acc
}
