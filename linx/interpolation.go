// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "math"

// InterpolationMethod selects how an Interpolator values non-integral
// positions.
type InterpolationMethod int

const (
	// NearestInterp rounds each coordinate half-up to the nearest
	// integral position.
	NearestInterp InterpolationMethod = iota
	// LinearInterp blends the 2^N surrounding corners multilinearly.
	LinearInterp
	// CubicInterp applies a Catmull-Rom cubic over the 4^N stencil
	// surrounding the position.
	CubicInterp
)

// Interpolator is a read-only decorator keyed by real-valued positions.
// If the parent is an Extrapolator, positions may lie anywhere; if it is
// a bare raster, the whole interpolation stencil must stay in-domain,
// otherwise behavior is undefined.
type Interpolator[T Real] struct {
	parent Source[T]
	method InterpolationMethod
}

// Interpolate decorates parent (a raster or extrapolator) with the given
// interpolation method.
func Interpolate[T Real](parent Source[T], method InterpolationMethod) *Interpolator[T] {
	return &Interpolator[T]{parent: parent, method: method}
}

// Parent returns the decorated source.
func (ip *Interpolator[T]) Parent() Source[T] { return ip.parent }

// Shape returns the parent shape.
func (ip *Interpolator[T]) Shape() Position { return ip.parent.Shape() }

// Domain returns the parent domain.
func (ip *Interpolator[T]) Domain() Box { return ip.parent.Domain() }

// At returns the parent value at an integral position.
func (ip *Interpolator[T]) At(p Position) T { return ip.parent.At(p) }

// AtReal computes the interpolated value at a real-valued position.
func (ip *Interpolator[T]) AtReal(pos Vector[float64]) float64 {
	switch ip.method {
	case NearestInterp:
		q := make(Position, len(pos))
		for i, c := range pos {
			q[i] = int(math.Floor(c + 0.5))
		}
		return float64(ip.parent.At(q))
	case LinearInterp:
		return ip.linear(pos, nil)
	default:
		return ip.cubic(pos, nil)
	}
}

// linear evaluates the multilinear blend recursively, one axis at a time,
// starting from the last. fixed holds the already-resolved trailing
// integral coordinates.
func (ip *Interpolator[T]) linear(pos Vector[float64], fixed Position) float64 {
	last := len(pos) - 1
	f := int(math.Floor(pos[last]))
	d := pos[last] - float64(f)
	if len(pos) == 1 {
		p := float64(ip.parent.At(append(Position{f}, fixed...)))
		if d == 0 {
			return p
		}
		n := float64(ip.parent.At(append(Position{f + 1}, fixed...)))
		return p + d*(n-p)
	}
	rest := pos[:last]
	p := ip.linear(rest, append(Position{f}, fixed...))
	if d == 0 {
		return p
	}
	n := ip.linear(rest, append(Position{f + 1}, fixed...))
	return p + d*(n-p)
}

// cubic evaluates the Catmull-Rom spline recursively, one axis at a time.
func (ip *Interpolator[T]) cubic(pos Vector[float64], fixed Position) float64 {
	last := len(pos) - 1
	f := int(math.Floor(pos[last]))
	d := pos[last] - float64(f)
	sample := func(k int) float64 {
		if len(pos) == 1 {
			return float64(ip.parent.At(append(Position{k}, fixed...)))
		}
		return ip.cubic(pos[:last], append(Position{k}, fixed...))
	}
	pp := sample(f - 1)
	p := sample(f)
	n := sample(f + 1)
	nn := sample(f + 2)
	return p + 0.5*(d*(-pp+n)+d*d*(2*pp-5*p+4*n-nn)+d*d*d*(-pp+3*p-3*n+nn))
}
