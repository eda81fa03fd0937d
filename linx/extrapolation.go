// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

// ExtrapolationMethod selects how an Extrapolator values out-of-domain
// positions. All methods are the identity for in-domain positions.
type ExtrapolationMethod int

const (
	// ConstantMethod returns a fixed value outside the domain
	// (Dirichlet boundary conditions).
	ConstantMethod ExtrapolationMethod = iota
	// NearestMethod clamps each coordinate into the domain
	// (zero-flux Neumann boundary conditions).
	NearestMethod
	// PeriodicMethod wraps each coordinate modulo the shape.
	PeriodicMethod
	// MirrorMethod reflects each coordinate at the domain edges.
	MirrorMethod
)

// Extrapolator is a read-only decorator of a raster which defines a value
// at every position, inside or outside the domain. In-domain reads
// delegate to the raster.
type Extrapolator[T Numeric] struct {
	raster     *Raster[T]
	method     ExtrapolationMethod
	constant   T
	repeatEdge bool
}

// ExtrapolateConstant decorates raster so that out-of-domain reads return
// value.
func ExtrapolateConstant[T Numeric](raster *Raster[T], value T) *Extrapolator[T] {
	return &Extrapolator[T]{raster: raster, method: ConstantMethod, constant: value}
}

// ExtrapolateNearest decorates raster with nearest-neighbor clamping.
func ExtrapolateNearest[T Numeric](raster *Raster[T]) *Extrapolator[T] {
	return &Extrapolator[T]{raster: raster, method: NearestMethod}
}

// ExtrapolatePeriodic decorates raster with modular wrapping.
func ExtrapolatePeriodic[T Numeric](raster *Raster[T]) *Extrapolator[T] {
	return &Extrapolator[T]{raster: raster, method: PeriodicMethod}
}

// ExtrapolateMirror decorates raster with symmetric reflection. With
// repeatEdge false the symmetry center is the edge pixel center (the edge
// sample is not repeated); with repeatEdge true it is the outer pixel
// boundary (the edge sample is repeated).
func ExtrapolateMirror[T Numeric](raster *Raster[T], repeatEdge bool) *Extrapolator[T] {
	return &Extrapolator[T]{raster: raster, method: MirrorMethod, repeatEdge: repeatEdge}
}

// Raster returns the decorated raster.
func (e *Extrapolator[T]) Raster() *Raster[T] { return e.raster }

// Method returns the extrapolation method.
func (e *Extrapolator[T]) Method() ExtrapolationMethod { return e.method }

// Shape returns the raster shape.
func (e *Extrapolator[T]) Shape() Position { return e.raster.Shape() }

// Dimension returns the number of axes.
func (e *Extrapolator[T]) Dimension() int { return e.raster.Dimension() }

// Domain returns the raster domain.
func (e *Extrapolator[T]) Domain() Box { return e.raster.Domain() }

// At returns the value at p, extrapolating when p is out of the domain.
func (e *Extrapolator[T]) At(p Position) T {
	shape := e.raster.shape
	index := 0
	stride := 1
	for i, c := range p {
		s := shape[i]
		if c < 0 || c >= s {
			switch e.method {
			case ConstantMethod:
				return e.constant
			case NearestMethod:
				if c < 0 {
					c = 0
				} else {
					c = s - 1
				}
			case PeriodicMethod:
				c = emod(c, s)
			case MirrorMethod:
				c = mirrorIndex(c, s, e.repeatEdge)
			}
		}
		index += c * stride
		stride *= s
	}
	return e.raster.data[index]
}

// Rebind returns an extrapolator with the same method and parameters
// over another raster. Filter pipelines use it to re-decorate
// intermediate results between passes.
func (e *Extrapolator[T]) Rebind(raster *Raster[T]) *Extrapolator[T] {
	out := *e
	out.raster = raster
	return &out
}

// Patch returns the decorated view over region. Its iteration is
// position-based: every read goes through the extrapolator.
func (e *Extrapolator[T]) Patch(region Region) *Patch[T] {
	return newPatch[T](e, nil, region)
}

// CopyRegion renders the values over a box, extrapolated where needed,
// into a new owning raster of the box shape.
func (e *Extrapolator[T]) CopyRegion(box Box) *Raster[T] {
	out := New[T](box.Shape()...)
	i := 0
	for p := range box.Positions() {
		out.data[i] = e.At(p)
		i++
	}
	return out
}

// mirrorIndex reflects c into [0, s). With repeatEdge, the reflection
// period is 2s and edge samples repeat; otherwise it is 2s-2 and the
// fold happens on the edge sample itself.
func mirrorIndex(c, s int, repeatEdge bool) int {
	if s == 1 {
		return 0
	}
	if repeatEdge {
		m := emod(c, 2*s)
		if m >= s {
			m = 2*s - 1 - m
		}
		return m
	}
	m := emod(c, 2*s-2)
	if m >= s {
		m = 2*s - 2 - m
	}
	return m
}
