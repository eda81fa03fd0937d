// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "iter"

// indexer enumerates the linear data indices of a raster-backed patch.
// Cached offsets are relative to the region's bounding front, so a single
// base shift makes them valid after any translation.
type indexer interface {
	// indices yields the data indices in region row-major order, where
	// base is the linear index of the region's bounding front.
	indices(base int) iter.Seq[int]
}

// strideIndexer iterates per-row spans: rowOffsets holds the offset of
// each row front, width the element count per row, step the data
// distance between consecutive elements of a row.
type strideIndexer struct {
	rowOffsets []int
	width      int
	step       int
}

func (s *strideIndexer) indices(base int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, off := range s.rowOffsets {
			i := base + off
			for j := 0; j < s.width; j, i = j+1, i+s.step {
				if !yield(i) {
					return
				}
			}
		}
	}
}

func newBoxIndexer(shape Position, region Box) *strideIndexer {
	s := &strideIndexer{width: region.Length(0), step: 1}
	if region.Size() <= 0 {
		return s
	}
	origin := region.TranslatedBox(region.front.Negated())
	plane := origin.Project(0)
	s.rowOffsets = make([]int, 0, plane.Size())
	for p := range plane.Positions() {
		s.rowOffsets = append(s.rowOffsets, IndexOf(shape, p))
	}
	return s
}

func newGridIndexer(shape Position, region Grid) *strideIndexer {
	s := &strideIndexer{width: region.Length(0), step: region.Step()[0]}
	if region.Size() <= 0 {
		return s
	}
	origin := Grid{box: region.box.TranslatedBox(region.Front().Negated()), step: region.step}
	plane := Grid{box: origin.box.Project(0), step: origin.step}
	s.rowOffsets = make([]int, 0, region.Size()/max(s.width, 1))
	for p := range plane.Positions() {
		s.rowOffsets = append(s.rowOffsets, IndexOf(shape, p))
	}
	return s
}

func newLineIndexer(shape Position, region Line) *strideIndexer {
	return &strideIndexer{
		rowOffsets: []int{0},
		width:      region.Size(),
		step:       ShapeStride(shape, region.Axis()) * region.Step(),
	}
}

// offsetIndexer caches one offset per region position, for irregular
// regions (masks, position sequences).
type offsetIndexer struct {
	offsets []int
}

func (o *offsetIndexer) indices(base int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, off := range o.offsets {
			if !yield(base + off) {
				return
			}
		}
	}
}

func newOffsetIndexer(shape Position, region Region) *offsetIndexer {
	front := region.Bounds().front
	o := &offsetIndexer{offsets: make([]int, 0, region.Size())}
	for p := range region.Positions() {
		o.offsets = append(o.offsets, IndexOf(shape, p.Minus(front)))
	}
	return o
}
