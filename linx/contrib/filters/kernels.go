// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package filters

import (
	"github.com/linxgo/linx/linx"
)

// inner returns the weighted-sum operation over the given weights, in
// window row-major order.
func inner[T linx.Numeric](weights []T) Op[T, T] {
	return func(values []T) T {
		var acc T
		for i, w := range weights {
			acc += w * values[i]
		}
		return acc
	}
}

// CorrelationAt returns the correlation filter with the given kernel,
// whose origin names the kernel sample which lands on the output
// position. Complex weights are conjugated.
func CorrelationAt[T linx.Numeric](kernel *linx.Raster[T], origin linx.Position) *Filter[T, T] {
	window := kernel.Domain().TranslatedBox(origin.Negated())
	weights := make([]T, kernel.Size())
	for i, w := range kernel.Data() {
		weights[i] = linx.Conj(w)
	}
	return New(window, inner(weights))
}

// Correlation returns the correlation filter with the given kernel,
// centered. Even lengths round the origin down.
func Correlation[T linx.Numeric](kernel *linx.Raster[T]) *Filter[T, T] {
	return CorrelationAt(kernel, centerOf(kernel.Shape()))
}

// ConvolutionAt returns the convolution filter with the given kernel
// and origin: the same window as the matching correlation, with the
// weights reversed and not conjugated.
func ConvolutionAt[T linx.Numeric](kernel *linx.Raster[T], origin linx.Position) *Filter[T, T] {
	window := kernel.Domain().TranslatedBox(origin.Negated())
	data := kernel.Data()
	weights := make([]T, len(data))
	for i, w := range data {
		weights[len(data)-1-i] = w
	}
	return New(window, inner(weights))
}

// Convolution returns the convolution filter with the given kernel,
// centered. Even lengths round the origin down.
func Convolution[T linx.Numeric](kernel *linx.Raster[T]) *Filter[T, T] {
	return ConvolutionAt(kernel, centerOf(kernel.Shape()))
}

func centerOf(shape linx.Position) linx.Position {
	out := shape.Clone()
	for i, s := range out {
		out[i] = (s - 1) / 2
	}
	return out
}

// lineWindow is the 1-D kernel window along one axis: the radius is
// half the value count, rounded down.
func lineWindow(rank, axis, size int) linx.Box {
	radius := size / 2
	front := linx.Zeros[int](rank)
	back := linx.Zeros[int](rank)
	front[axis] = -radius
	back[axis] = size - radius - 1
	return linx.NewBox(front, back)
}

// CorrelationAlong returns the 1-D correlation filter with the given
// values along one axis of a rank-dimensional raster.
func CorrelationAlong[T linx.Numeric](rank, axis int, values []T) *Filter[T, T] {
	weights := make([]T, len(values))
	for i, w := range values {
		weights[i] = linx.Conj(w)
	}
	return New(lineWindow(rank, axis, len(values)), inner(weights))
}

// ConvolutionAlong returns the 1-D convolution filter with the given
// values along one axis of a rank-dimensional raster.
func ConvolutionAlong[T linx.Numeric](rank, axis int, values []T) *Filter[T, T] {
	weights := make([]T, len(values))
	for i, w := range values {
		weights[len(values)-1-i] = w
	}
	return New(lineWindow(rank, axis, len(values)), inner(weights))
}

// gradient builds the separable derivative-and-smoothing pipeline shared
// by the Prewitt, Sobel and Scharr makers: the convolution along the
// derivation axis is {sign, 0, -sign}, and the given smoothing values
// run along every other axis.
func gradient[T linx.Numeric](rank, derivation int, sign T, smoothing []T) Pipeline[T] {
	passes := Pipeline[T]{ConvolutionAlong(rank, derivation, []T{sign, 0, -sign})}
	for axis := 0; axis < rank; axis++ {
		if axis != derivation {
			passes = append(passes, ConvolutionAlong(rank, axis, smoothing))
		}
	}
	return passes
}

// PrewittGradient returns the Prewitt derivative pipeline along the
// given axis: {sign, 0, -sign} differentiation and {1, 1, 1} smoothing
// on the other axes. sign 1 differentiates toward increasing indices,
// sign -1 the other way.
func PrewittGradient[T linx.Numeric](rank, derivation int, sign T) Pipeline[T] {
	return gradient(rank, derivation, sign, []T{1, 1, 1})
}

// SobelGradient returns the Sobel derivative pipeline along the given
// axis: {sign, 0, -sign} differentiation and {1, 2, 1} smoothing on the
// other axes.
func SobelGradient[T linx.Numeric](rank, derivation int, sign T) Pipeline[T] {
	return gradient(rank, derivation, sign, []T{1, 2, 1})
}

// ScharrGradient returns the Scharr derivative pipeline along the given
// axis: {sign, 0, -sign} differentiation and {3, 10, 3} smoothing on the
// other axes.
func ScharrGradient[T linx.Numeric](rank, derivation int, sign T) Pipeline[T] {
	return gradient(rank, derivation, sign, []T{3, 10, 3})
}

// Laplacian returns the Laplace operator of the given rank: the sum of
// the 1-D convolutions {sign, -2*sign, sign} along every axis, realized
// as one cross-shaped window (the unit L1 ball).
func Laplacian[T linx.Numeric](rank int, sign T) *Filter[T, T] {
	window := linx.Ball(1, 1, linx.Zeros[int](rank))
	weights := make([]T, window.Size())
	center := window.Size() / 2
	for i := range weights {
		if i == center {
			weights[i] = sign * linx.FromInt[T](-2*rank)
		} else {
			weights[i] = sign
		}
	}
	return New(window, inner(weights))
}
