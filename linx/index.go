// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

// ShapeSize returns the number of positions in a shape: the product of its
// components, or 0 if any component is not positive.
func ShapeSize(shape Position) int {
	if len(shape) == 0 {
		return 0
	}
	size := 1
	for _, s := range shape {
		if s <= 0 {
			return 0
		}
		size *= s
	}
	return size
}

// Strides returns the row-major strides of a shape: stride 0 is 1 and
// stride i+1 is stride i times shape[i].
func Strides(shape Position) Position {
	out := make(Position, len(shape))
	stride := 1
	for i, s := range shape {
		out[i] = stride
		stride *= s
	}
	return out
}

// ShapeStride returns the stride along the given axis.
func ShapeStride(shape Position, axis int) int {
	stride := 1
	for i := 0; i < axis; i++ {
		stride *= shape[i]
	}
	return stride
}

// IndexOf returns the row-major linear index of p in a raster of the given
// shape. p may be shorter than the shape, in which case the missing
// coordinates are zero.
func IndexOf(shape, p Position) int {
	index := 0
	stride := 1
	for i, c := range p {
		index += c * stride
		stride *= shape[i]
	}
	return index
}

// PositionAt returns the position whose row-major linear index is i in a
// raster of the given shape. It is the inverse of IndexOf.
func PositionAt(shape Position, i int) Position {
	out := make(Position, len(shape))
	for a, s := range shape {
		out[a] = i % s
		i /= s
	}
	return out
}
