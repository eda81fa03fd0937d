// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

// Uniform element-generation API of rasters.

// Fill sets every element to value.
func (r *Raster[T]) Fill(value T) *Raster[T] {
	for i := range r.data {
		r.data[i] = value
	}
	return r
}

// Range fills r with the arithmetic progression start, start+step, ...
// The difference between adjacent elements is exactly step.
func (r *Raster[T]) Range(start, step T) *Raster[T] {
	v := start
	for i := range r.data {
		r.data[i] = v
		v += step
	}
	return r
}

// Linspace fills r with evenly spaced values from lo to hi inclusive:
// the first element is exactly lo and the last exactly hi. For integer
// element types the intermediate values truncate toward zero, computed
// with integer arithmetic only.
func (r *Raster[T]) Linspace(lo, hi T) *Raster[T] {
	n := len(r.data)
	if n == 0 {
		return r
	}
	if n == 1 {
		r.data[0] = lo
		return r
	}
	if isInteger[T]() {
		for i := range r.data {
			r.data[i] = lo + (hi-lo)*fromInt[T](i)/fromInt[T](n-1)
		}
	} else {
		step := (hi - lo) / fromInt[T](n-1)
		for i := range r.data {
			r.data[i] = lo + fromInt[T](i)*step
		}
		r.data[n-1] = hi
	}
	return r
}

// Generate sets every element to fn(), called once per element in
// row-major order.
func (r *Raster[T]) Generate(fn func() T) *Raster[T] {
	for i := range r.data {
		r.data[i] = fn()
	}
	return r
}

// Map writes fn(in[i]) into every element. in must have the same shape.
func (r *Raster[T]) Map(fn func(T) T, in *Raster[T]) *Raster[T] {
	sameShape(r, in)
	for i := range r.data {
		r.data[i] = fn(in.data[i])
	}
	return r
}

// Zip writes fn(a[i], b[i]) into every element. a and b must have the
// same shape as r.
func (r *Raster[T]) Zip(fn func(T, T) T, a, b *Raster[T]) *Raster[T] {
	sameShape(r, a)
	sameShape(r, b)
	for i := range r.data {
		r.data[i] = fn(a.data[i], b.data[i])
	}
	return r
}

// Apply replaces every element e with fn(e): Map(fn, r).
func (r *Raster[T]) Apply(fn func(T) T) *Raster[T] {
	return r.Map(fn, r)
}
