// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

// Element-wise arithmetic on rasters, in the two flavors of the container
// API: in-place methods mutating the receiver, and out-of-place forms
// which allocate the result once and stream.
//
// Binary raster forms require identical shapes and panic with a
// *SizeMismatchError otherwise. The modulo forms are free functions, as
// Go defines % for integer types only.

func sameShape[T Numeric](a, b *Raster[T]) {
	if !a.shape.Equal(b.shape) {
		panic(&SizeMismatchError{Name: "raster shape", Expected: a.Size(), Actual: b.Size()})
	}
}

// Add adds o element-wise, in place.
func (r *Raster[T]) Add(o *Raster[T]) *Raster[T] {
	sameShape(r, o)
	for i := range r.data {
		r.data[i] += o.data[i]
	}
	return r
}

// Sub subtracts o element-wise, in place.
func (r *Raster[T]) Sub(o *Raster[T]) *Raster[T] {
	sameShape(r, o)
	for i := range r.data {
		r.data[i] -= o.data[i]
	}
	return r
}

// Mul multiplies by o element-wise, in place.
func (r *Raster[T]) Mul(o *Raster[T]) *Raster[T] {
	sameShape(r, o)
	for i := range r.data {
		r.data[i] *= o.data[i]
	}
	return r
}

// Div divides by o element-wise, in place.
func (r *Raster[T]) Div(o *Raster[T]) *Raster[T] {
	sameShape(r, o)
	for i := range r.data {
		r.data[i] /= o.data[i]
	}
	return r
}

// AddScalar adds s to every element, in place.
func (r *Raster[T]) AddScalar(s T) *Raster[T] {
	for i := range r.data {
		r.data[i] += s
	}
	return r
}

// SubScalar subtracts s from every element, in place.
func (r *Raster[T]) SubScalar(s T) *Raster[T] {
	for i := range r.data {
		r.data[i] -= s
	}
	return r
}

// MulScalar multiplies every element by s, in place.
func (r *Raster[T]) MulScalar(s T) *Raster[T] {
	for i := range r.data {
		r.data[i] *= s
	}
	return r
}

// DivScalar divides every element by s, in place.
func (r *Raster[T]) DivScalar(s T) *Raster[T] {
	for i := range r.data {
		r.data[i] /= s
	}
	return r
}

// Plus returns a new raster holding r + o.
func (r *Raster[T]) Plus(o *Raster[T]) *Raster[T] {
	return r.Copy().Add(o)
}

// Minus returns a new raster holding r - o.
func (r *Raster[T]) Minus(o *Raster[T]) *Raster[T] {
	return r.Copy().Sub(o)
}

// Times returns a new raster holding r * o.
func (r *Raster[T]) Times(o *Raster[T]) *Raster[T] {
	return r.Copy().Mul(o)
}

// Over returns a new raster holding r / o.
func (r *Raster[T]) Over(o *Raster[T]) *Raster[T] {
	return r.Copy().Div(o)
}

// PlusScalar returns a new raster holding r + s.
func (r *Raster[T]) PlusScalar(s T) *Raster[T] {
	return r.Copy().AddScalar(s)
}

// MinusScalar returns a new raster holding r - s.
func (r *Raster[T]) MinusScalar(s T) *Raster[T] {
	return r.Copy().SubScalar(s)
}

// TimesScalar returns a new raster holding r * s.
func (r *Raster[T]) TimesScalar(s T) *Raster[T] {
	return r.Copy().MulScalar(s)
}

// OverScalar returns a new raster holding r / s.
func (r *Raster[T]) OverScalar(s T) *Raster[T] {
	return r.Copy().DivScalar(s)
}

// Negate flips the sign of every element, in place.
func (r *Raster[T]) Negate() *Raster[T] {
	for i := range r.data {
		r.data[i] = -r.data[i]
	}
	return r
}

// Mod reduces every element of r modulo the matching element of o, in
// place.
func Mod[T Integer](r, o *Raster[T]) *Raster[T] {
	sameShape(r, o)
	for i := range r.data {
		r.data[i] %= o.data[i]
	}
	return r
}

// ModScalar reduces every element of r modulo s, in place.
func ModScalar[T Integer](r *Raster[T], s T) *Raster[T] {
	for i := range r.data {
		r.data[i] %= s
	}
	return r
}

// Modulo returns a new raster holding r % o.
func Modulo[T Integer](r, o *Raster[T]) *Raster[T] {
	return Mod(r.Copy(), o)
}

// ModuloScalar returns a new raster holding r % s.
func ModuloScalar[T Integer](r *Raster[T], s T) *Raster[T] {
	return ModScalar(r.Copy(), s)
}

// Equal reports whether r and o have the same shape and elements.
func (r *Raster[T]) Equal(o *Raster[T]) bool {
	if !r.shape.Equal(o.shape) {
		return false
	}
	for i := range r.data {
		if r.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
