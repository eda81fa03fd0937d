// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

// Package geometry applies affine transforms to rasters.
//
// An Affinity composes a linear map, a translation and a fixed center:
// it sends x to translation + center + map * (x - center). Transforms
// are built from the Translation, Scaling and Rotation constructors or
// by chaining the mutating Translate, Scale and Rotate methods, and are
// applied to interpolated rasters with Warp.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/linxgo/linx/linx"
)

// Affinity is a geometrical affine transform (translation, scaling,
// rotation) of fixed dimension.
type Affinity struct {
	dim         int
	m           *mat.Dense
	translation *mat.VecDense
	center      *mat.VecDense
}

// NewAffinity returns the identity transform around the given center.
func NewAffinity(center linx.Vector[float64]) *Affinity {
	dim := center.Size()
	a := &Affinity{
		dim:         dim,
		m:           mat.NewDense(dim, dim, nil),
		translation: mat.NewVecDense(dim, nil),
		center:      toVec(center),
	}
	for i := range dim {
		a.m.Set(i, i, 1)
	}
	return a
}

// Identity returns the identity transform of the given dimension,
// centered at the origin.
func Identity(dim int) *Affinity {
	return NewAffinity(make(linx.Vector[float64], dim))
}

// Translation returns the transform which adds vector to every
// position.
func Translation(vector linx.Vector[float64]) *Affinity {
	return Identity(vector.Size()).Translate(vector)
}

// Scaling returns the transform which scales by factors around center.
func Scaling(factors, center linx.Vector[float64]) *Affinity {
	return NewAffinity(center).Scale(factors)
}

// IsotropicScaling returns the transform which scales by factor along
// every axis around center.
func IsotropicScaling(factor float64, center linx.Vector[float64]) *Affinity {
	return NewAffinity(center).ScaleScalar(factor)
}

// RotationRadians returns the rotation by angle in the plane spanned by
// the from and to axes, around center.
func RotationRadians(angle float64, from, to int, center linx.Vector[float64]) *Affinity {
	return NewAffinity(center).RotateRadians(angle, from, to)
}

// RotationDegrees returns the rotation by angle in degrees in the plane
// spanned by the from and to axes, around center.
func RotationDegrees(angle float64, from, to int, center linx.Vector[float64]) *Affinity {
	return NewAffinity(center).RotateDegrees(angle, from, to)
}

// Dimension returns the dimension of the transform.
func (a *Affinity) Dimension() int { return a.dim }

// Translate adds vector to the translation part and returns a.
func (a *Affinity) Translate(vector linx.Vector[float64]) *Affinity {
	if !vector.IsZero() {
		a.translation.AddVec(a.translation, toVec(vector))
	}
	return a
}

// TranslateScalar translates by s along every axis and returns a.
func (a *Affinity) TranslateScalar(s float64) *Affinity {
	for i := range a.dim {
		a.translation.SetVec(i, a.translation.AtVec(i)+s)
	}
	return a
}

// Scale composes the linear part with a per-axis scaling and returns a.
func (a *Affinity) Scale(factors linx.Vector[float64]) *Affinity {
	if factors.IsOne() {
		return a
	}
	d := mat.NewDiagDense(a.dim, factors.Clone())
	a.m.Mul(a.m, d)
	return a
}

// ScaleScalar composes the linear part with an isotropic scaling and
// returns a.
func (a *Affinity) ScaleScalar(factor float64) *Affinity {
	return a.Scale(make(linx.Vector[float64], a.dim).Fill(factor))
}

// RotateRadians composes the linear part with the rotation by angle in
// the plane spanned by the from and to axes and returns a.
func (a *Affinity) RotateRadians(angle float64, from, to int) *Affinity {
	if angle == 0 {
		return a
	}
	sin, cos := math.Sincos(angle)
	r := mat.NewDense(a.dim, a.dim, nil)
	for i := range a.dim {
		r.Set(i, i, 1)
	}
	r.Set(from, from, cos)
	r.Set(from, to, -sin)
	r.Set(to, from, sin)
	r.Set(to, to, cos)
	a.m.Mul(a.m, r)
	return a
}

// RotateDegrees composes the linear part with the rotation by angle in
// degrees and returns a.
func (a *Affinity) RotateDegrees(angle float64, from, to int) *Affinity {
	return a.RotateRadians(angle*math.Pi/180, from, to)
}

// Inverse returns the inverse transform. It panics when the linear part
// is singular, e.g. after scaling by zero.
func (a *Affinity) Inverse() *Affinity {
	inv := Identity(a.dim)
	if err := inv.m.Inverse(a.m); err != nil {
		panic("geometry: affinity is not invertible: " + err.Error())
	}
	inv.translation.MulVec(inv.m, a.translation)
	inv.translation.ScaleVec(-1, inv.translation)
	inv.center.CopyVec(a.center)
	return inv
}

// Apply transforms the input vector:
// translation + center + map * (in - center).
func (a *Affinity) Apply(in linx.Vector[float64]) linx.Vector[float64] {
	x := toVec(in)
	x.SubVec(x, a.center)
	y := mat.NewVecDense(a.dim, nil)
	y.MulVec(a.m, x)
	y.AddVec(y, a.center)
	y.AddVec(y, a.translation)
	out := make(linx.Vector[float64], a.dim)
	for i := range out {
		out[i] = y.AtVec(i)
	}
	return out
}

// ApplyPosition transforms an integer position.
func (a *Affinity) ApplyPosition(p linx.Position) linx.Vector[float64] {
	return a.Apply(toReal(p))
}

func toVec(v linx.Vector[float64]) *mat.VecDense {
	return mat.NewVecDense(v.Size(), v.Clone())
}

func toReal(p linx.Position) linx.Vector[float64] {
	out := make(linx.Vector[float64], len(p))
	for i, c := range p {
		out[i] = float64(c)
	}
	return out
}

// Warp resamples in through the transform: each output position p takes
// the interpolated value of in at the preimage of p. The output raster
// spans the input domain. Positions whose preimage falls outside the
// domain read through the interpolator's extrapolation decoration, so
// the interpolator must wrap an extrapolator when the transform moves
// the domain.
func Warp[T linx.Real](in *linx.Interpolator[T], a *Affinity) *linx.Raster[T] {
	out := linx.New[T](in.Shape()...)
	WarpTo(out, in, a)
	return out
}

// WarpTo resamples in through the transform into out, which selects the
// positions to fill.
func WarpTo[T linx.Real](out *linx.Raster[T], in *linx.Interpolator[T], a *Affinity) {
	inv := a.Inverse()
	data := out.Data()
	i := 0
	for p := range out.Domain().Positions() {
		data[i] = fromReal[T](in.AtReal(inv.ApplyPosition(p)))
		i++
	}
}

// Rotate resamples in rotated by angle in radians around the center of
// its domain, in the plane spanned by the from and to axes.
func Rotate[T linx.Real](in *linx.Interpolator[T], angle float64, from, to int) *linx.Raster[T] {
	return Warp(in, RotationRadians(angle, from, to, domainCenter(in.Domain())))
}

// Scale resamples in scaled by factor around the center of its domain.
func Scale[T linx.Real](in *linx.Interpolator[T], factor float64) *linx.Raster[T] {
	return Warp(in, IsotropicScaling(factor, domainCenter(in.Domain())))
}

// Shift resamples in translated by vector.
func Shift[T linx.Real](in *linx.Interpolator[T], vector linx.Vector[float64]) *linx.Raster[T] {
	return Warp(in, Translation(vector))
}

func domainCenter(d linx.Box) linx.Vector[float64] {
	return toReal(d.Front().Plus(d.Back())).OverScalar(2)
}

// fromReal converts an interpolated value back to the element type,
// rounding for integer elements.
func fromReal[T linx.Real](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(v)
	default:
		return T(math.Round(v))
	}
}
