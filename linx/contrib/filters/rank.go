// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package filters

import (
	"github.com/linxgo/linx/linx"
)

// Mean returns the filter averaging the window values: their sum divided
// by the window size.
func Mean[T linx.Numeric](window linx.Region) *Filter[T, T] {
	denom := linx.FromInt[T](window.Size())
	return New(window, func(values []T) T {
		var acc T
		for _, v := range values {
			acc += v
		}
		return acc / denom
	})
}

// Median returns the filter selecting the median of the window values.
// For even window sizes it averages the two middle values.
func Median[T linx.Real](window linx.Region) *Filter[T, T] {
	size := window.Size()
	two := linx.FromInt[T](2)
	return New(window, func(values []T) T {
		scratch := make([]T, size)
		copy(scratch, values)
		mid := linx.NthElement(scratch, size/2)
		if size%2 == 1 {
			return mid
		}
		return (linx.NthElement(scratch, size/2-1) + mid) / two
	})
}

// Erosion returns the filter selecting the window minimum.
func Erosion[T linx.Real](window linx.Region) *Filter[T, T] {
	return New(window, func(values []T) T {
		out := values[0]
		for _, v := range values[1:] {
			if v < out {
				out = v
			}
		}
		return out
	})
}

// Dilation returns the filter selecting the window maximum.
func Dilation[T linx.Real](window linx.Region) *Filter[T, T] {
	return New(window, func(values []T) T {
		out := values[0]
		for _, v := range values[1:] {
			if v > out {
				out = v
			}
		}
		return out
	})
}
