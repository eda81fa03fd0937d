// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

// Vector is an ordered sequence of numeric values with element-wise
// arithmetic. The rank is dynamic: it is simply the slice length.
//
// Binary operations require both operands to have the same size and panic
// with a *SizeMismatchError otherwise.
type Vector[T Numeric] []T

// Position is an integer coordinate tuple. It doubles as a shape.
type Position = Vector[int]

// NewVector returns a size-element vector of zero values.
func NewVector[T Numeric](size int) Vector[T] {
	return make(Vector[T], size)
}

// Zeros returns a vector filled with the zero of T.
func Zeros[T Numeric](size int) Vector[T] {
	return make(Vector[T], size)
}

// Ones returns a vector filled with the one of T.
func Ones[T Numeric](size int) Vector[T] {
	v := make(Vector[T], size)
	for i := range v {
		v[i] = 1
	}
	return v
}

// Infs returns a vector filled with Inf[T].
func Infs[T Numeric](size int) Vector[T] {
	v := make(Vector[T], size)
	inf := Inf[T]()
	for i := range v {
		v[i] = inf
	}
	return v
}

// Size returns the number of components.
func (v Vector[T]) Size() int { return len(v) }

// Clone returns a copy of v.
func (v Vector[T]) Clone() Vector[T] {
	out := make(Vector[T], len(v))
	copy(out, v)
	return out
}

// Fill sets every component to value and returns v.
func (v Vector[T]) Fill(value T) Vector[T] {
	for i := range v {
		v[i] = value
	}
	return v
}

// Slice returns a copy of the first m components. m must not exceed Size.
func (v Vector[T]) Slice(m int) Vector[T] {
	if m > len(v) {
		panic(&OutOfBoundsError{Name: "slice size", Value: m, Min: 0, Max: len(v)})
	}
	return v[:m].Clone()
}

// Extend returns a vector of pad's size whose first Size components come
// from v and the remaining ones from pad. pad must not be shorter than v.
func (v Vector[T]) Extend(pad Vector[T]) Vector[T] {
	if len(pad) < len(v) {
		panic(&SizeMismatchError{Name: "padding", Expected: len(v), Actual: len(pad)})
	}
	out := pad.Clone()
	copy(out, v)
	return out
}

// IsZero reports whether every component is zero.
func (v Vector[T]) IsZero() bool {
	for _, e := range v {
		if e != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether every component is one.
func (v Vector[T]) IsOne() bool {
	for _, e := range v {
		if e != 1 {
			return false
		}
	}
	return true
}

// IsInf reports whether every component equals Inf[T].
func (v Vector[T]) IsInf() bool {
	inf := Inf[T]()
	for _, e := range v {
		if e != inf {
			return false
		}
	}
	return true
}

func sameSize[T Numeric](name string, v, w Vector[T]) {
	if len(v) != len(w) {
		panic(&SizeMismatchError{Name: name, Expected: len(v), Actual: len(w)})
	}
}

// Plus returns the element-wise sum v + w.
func (v Vector[T]) Plus(w Vector[T]) Vector[T] {
	sameSize("vector", v, w)
	out := v.Clone()
	for i := range out {
		out[i] += w[i]
	}
	return out
}

// Minus returns the element-wise difference v - w.
func (v Vector[T]) Minus(w Vector[T]) Vector[T] {
	sameSize("vector", v, w)
	out := v.Clone()
	for i := range out {
		out[i] -= w[i]
	}
	return out
}

// Times returns the element-wise product v * w.
func (v Vector[T]) Times(w Vector[T]) Vector[T] {
	sameSize("vector", v, w)
	out := v.Clone()
	for i := range out {
		out[i] *= w[i]
	}
	return out
}

// Over returns the element-wise quotient v / w.
func (v Vector[T]) Over(w Vector[T]) Vector[T] {
	sameSize("vector", v, w)
	out := v.Clone()
	for i := range out {
		out[i] /= w[i]
	}
	return out
}

// PlusScalar returns v with s added to every component.
func (v Vector[T]) PlusScalar(s T) Vector[T] {
	out := v.Clone()
	for i := range out {
		out[i] += s
	}
	return out
}

// MinusScalar returns v with s subtracted from every component.
func (v Vector[T]) MinusScalar(s T) Vector[T] {
	out := v.Clone()
	for i := range out {
		out[i] -= s
	}
	return out
}

// TimesScalar returns v scaled by s.
func (v Vector[T]) TimesScalar(s T) Vector[T] {
	out := v.Clone()
	for i := range out {
		out[i] *= s
	}
	return out
}

// OverScalar returns v divided by s.
func (v Vector[T]) OverScalar(s T) Vector[T] {
	out := v.Clone()
	for i := range out {
		out[i] /= s
	}
	return out
}

// Negated returns -v.
func (v Vector[T]) Negated() Vector[T] {
	out := v.Clone()
	for i := range out {
		out[i] = -out[i]
	}
	return out
}

// Inc adds one to every component in place and returns v.
func (v Vector[T]) Inc() Vector[T] {
	for i := range v {
		v[i]++
	}
	return v
}

// Dec subtracts one from every component in place and returns v.
func (v Vector[T]) Dec() Vector[T] {
	for i := range v {
		v[i]--
	}
	return v
}

// Add adds w to v in place.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	sameSize("vector", v, w)
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub subtracts w from v in place.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	sameSize("vector", v, w)
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// Equal reports whether v and w have the same size and components.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// Norm returns the p-norm of v raised to the p-th power, for p in {0, 1, 2}:
// the count of non-zero components, the sum of absolute values, or the sum
// of squares. It panics for any other p.
func Norm[T Real](v Vector[T], p int) T {
	var out T
	switch p {
	case 0:
		for _, e := range v {
			if e != 0 {
				out++
			}
		}
	case 1:
		for _, e := range v {
			out += absReal(e)
		}
	case 2:
		for _, e := range v {
			out += e * e
		}
	default:
		panic(&OutOfBoundsError{Name: "norm power", Value: p, Min: 0, Max: 2})
	}
	return out
}

func absReal[T Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// emod returns the Euclidean modulus of a by b: the result is in [0, b).
func emod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
