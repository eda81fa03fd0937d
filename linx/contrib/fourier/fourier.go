// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

// Package fourier computes discrete Fourier transforms of rasters.
//
// Transforms go through plans: a Plan is bound to a shape and a
// direction, owns an aligned work buffer, and precomputes the twiddle
// factors for every axis. Plans are created and cached by a
// process-wide planner, initialized lazily on first use. The transform
// itself is an iterative radix-2 FFT applied axis by axis, so every
// axis length must be a power of two.
//
// A plan transforms its own buffer in place; plans obtained from the
// planner are shared and must not be executed concurrently.
package fourier

import (
	"fmt"
	"sync"

	"github.com/linxgo/linx/linx"
)

// Direction selects the transform sign convention.
type Direction int

const (
	// Forward uses the exp(-2i pi k n / N) kernel, unscaled.
	Forward Direction = iota
	// Inverse uses the exp(+2i pi k n / N) kernel, scaled by 1/N.
	Inverse
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "inverse"
}

// LengthError reports an axis length the radix-2 transform cannot
// handle.
type LengthError struct {
	Axis   int
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("fourier: length %d of axis %d is not a power of two", e.Length, e.Axis)
}

// Plan is a transform of a fixed shape and direction. It owns an
// aligned buffer of that shape; Execute transforms the buffer in place.
type Plan struct {
	shape    linx.Position
	dir      Direction
	buf      *linx.Raster[complex128]
	twiddles [][]complex128 // per axis, half the axis length
	scratch  []complex128   // longest axis
}

func newPlan(dir Direction, shape linx.Position) (*Plan, error) {
	longest := 0
	for axis, n := range shape {
		if n < 1 || n&(n-1) != 0 {
			return nil, &LengthError{Axis: axis, Length: n}
		}
		longest = max(longest, n)
	}
	p := &Plan{
		shape:    shape.Clone(),
		dir:      dir,
		buf:      linx.NewAligned[complex128](0, shape...),
		twiddles: make([][]complex128, len(shape)),
		scratch:  make([]complex128, longest),
	}
	for axis, n := range shape {
		p.twiddles[axis] = twiddleFactors(n, dir)
	}
	return p, nil
}

// Shape returns the plan's raster shape.
func (p *Plan) Shape() linx.Position { return p.shape.Clone() }

// Direction returns the plan's transform direction.
func (p *Plan) Direction() Direction { return p.dir }

// Buffer returns the plan's work buffer. Fill it, call Execute, read
// the result back from it.
func (p *Plan) Buffer() *linx.Raster[complex128] { return p.buf }

// Execute transforms the plan's buffer in place, one axis at a time.
func (p *Plan) Execute() {
	data := p.buf.Data()
	strides := linx.Strides(p.shape)
	for axis, n := range p.shape {
		if n == 1 {
			continue
		}
		tw := p.twiddles[axis]
		stride := strides[axis]
		block := stride * n
		for hi := 0; hi < len(data); hi += block {
			for lo := range stride {
				p.transformLine(data[hi+lo:], n, stride, tw)
			}
		}
	}
}

// transformLine runs the radix-2 kernel on the n elements
// data[0], data[stride], ..., gathering through scratch when the line
// is not contiguous.
func (p *Plan) transformLine(data []complex128, n, stride int, tw []complex128) {
	if stride == 1 {
		radix2(data[:n], tw, p.dir)
		return
	}
	line := p.scratch[:n]
	for k := range line {
		line[k] = data[k*stride]
	}
	radix2(line, tw, p.dir)
	for k, v := range line {
		data[k*stride] = v
	}
}

// Transform copies in into the plan's buffer, executes, and returns the
// result as a fresh raster.
func (p *Plan) Transform(in *linx.Raster[complex128]) (*linx.Raster[complex128], error) {
	if err := p.checkShape(in.Shape()); err != nil {
		return nil, err
	}
	copy(p.buf.Data(), in.Data())
	p.Execute()
	return p.buf.Copy(), nil
}

func (p *Plan) checkShape(shape linx.Position) error {
	if !p.shape.Equal(shape) {
		return &linx.SizeMismatchError{
			Name:     fmt.Sprintf("%s plan input for shape %v", p.dir, p.shape),
			Expected: linx.ShapeSize(p.shape),
			Actual:   linx.ShapeSize(shape),
		}
	}
	return nil
}

// Planner creates and caches plans. The zero value is ready to use.
type Planner struct {
	mu    sync.Mutex
	plans map[string]*Plan
}

var (
	plannerOnce sync.Once
	planner     *Planner
)

// DefaultPlanner returns the process-wide planner, created on first
// call.
func DefaultPlanner() *Planner {
	plannerOnce.Do(func() {
		planner = &Planner{}
	})
	return planner
}

// Plan returns a cached plan for the direction and shape, creating it
// on first request.
func (pl *Planner) Plan(dir Direction, shape ...int) (*Plan, error) {
	key := fmt.Sprintf("%s %v", dir, shape)
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if p, ok := pl.plans[key]; ok {
		return p, nil
	}
	p, err := newPlan(dir, shape)
	if err != nil {
		return nil, err
	}
	if pl.plans == nil {
		pl.plans = make(map[string]*Plan)
	}
	pl.plans[key] = p
	return p, nil
}

// DFT returns the forward transform of in, using the default planner.
func DFT(in *linx.Raster[complex128]) (*linx.Raster[complex128], error) {
	p, err := DefaultPlanner().Plan(Forward, in.Shape()...)
	if err != nil {
		return nil, err
	}
	return p.Transform(in)
}

// InverseDFT returns the inverse transform of in, using the default
// planner. InverseDFT(DFT(r)) recovers r up to rounding.
func InverseDFT(in *linx.Raster[complex128]) (*linx.Raster[complex128], error) {
	p, err := DefaultPlanner().Plan(Inverse, in.Shape()...)
	if err != nil {
		return nil, err
	}
	return p.Transform(in)
}

// RealDFT returns the forward transform of a real raster.
func RealDFT(in *linx.Raster[float64]) (*linx.Raster[complex128], error) {
	p, err := DefaultPlanner().Plan(Forward, in.Shape()...)
	if err != nil {
		return nil, err
	}
	buf := p.Buffer().Data()
	for i, v := range in.Data() {
		buf[i] = complex(v, 0)
	}
	p.Execute()
	return p.Buffer().Copy(), nil
}

// InverseRealDFT returns the real part of the inverse transform,
// discarding the imaginary residue left by rounding.
func InverseRealDFT(in *linx.Raster[complex128]) (*linx.Raster[float64], error) {
	p, err := DefaultPlanner().Plan(Inverse, in.Shape()...)
	if err != nil {
		return nil, err
	}
	inv, err := p.Transform(in)
	if err != nil {
		return nil, err
	}
	out := linx.New[float64](in.Shape()...)
	data := out.Data()
	for i, v := range inv.Data() {
		data[i] = real(v)
	}
	return out, nil
}
