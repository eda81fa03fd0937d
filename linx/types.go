// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import "math"

// Signed is a constraint for signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint for integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint for floating-point types.
type Float interface {
	~float32 | ~float64
}

// Real is a constraint for ordered numeric types.
type Real interface {
	Integer | Float
}

// Complex is a constraint for complex types.
type Complex interface {
	~complex64 | ~complex128
}

// Numeric is the element constraint of all containers in this package.
type Numeric interface {
	Real | Complex
}

// Inf returns the "infinity" sentinel of T: +Inf for floating-point
// components, the maximum value for integer types.
func Inf[T Numeric]() (inf T) {
	switch p := any(&inf).(type) {
	case *float32:
		*p = float32(math.Inf(1))
	case *float64:
		*p = math.Inf(1)
	case *complex64:
		*p = complex(float32(math.Inf(1)), float32(math.Inf(1)))
	case *complex128:
		*p = complex(math.Inf(1), math.Inf(1))
	case *int:
		*p = math.MaxInt
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint:
		*p = math.MaxUint
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	}
	return inf
}

// MinOf returns the minimum value of T (-Inf for floats).
func MinOf[T Real]() (min T) {
	switch p := any(&min).(type) {
	case *float32:
		*p = float32(math.Inf(-1))
	case *float64:
		*p = math.Inf(-1)
	case *int:
		*p = math.MinInt
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	}
	return min
}

// MaxOf returns the maximum value of T (+Inf for floats).
func MaxOf[T Real]() T {
	return Inf[T]()
}

// Conj returns the complex conjugate of v. For real types it returns v.
func Conj[T Numeric](v T) T {
	switch p := any(&v).(type) {
	case *complex64:
		*p = complex(real(*p), -imag(*p))
	case *complex128:
		*p = complex(real(*p), -imag(*p))
	}
	return v
}

// fromInt converts i to T. It exists because Go forbids converting a
// non-constant integer to a complex type, which rules out T(i) under the
// Numeric constraint.
func fromInt[T Numeric](i int) (out T) {
	switch p := any(&out).(type) {
	case *int:
		*p = i
	case *int8:
		*p = int8(i)
	case *int16:
		*p = int16(i)
	case *int32:
		*p = int32(i)
	case *int64:
		*p = int64(i)
	case *uint:
		*p = uint(i)
	case *uint8:
		*p = uint8(i)
	case *uint16:
		*p = uint16(i)
	case *uint32:
		*p = uint32(i)
	case *uint64:
		*p = uint64(i)
	case *float32:
		*p = float32(i)
	case *float64:
		*p = float64(i)
	case *complex64:
		*p = complex(float32(i), 0)
	case *complex128:
		*p = complex(float64(i), 0)
	}
	return out
}

// FromInt converts i to any numeric type. It exists because Go forbids
// converting a non-constant integer to a complex type.
func FromInt[T Numeric](i int) T { return fromInt[T](i) }

// toFloat converts v to float64. Complex values map to their real part.
func toFloat[T Numeric](v T) float64 {
	switch p := any(&v).(type) {
	case *int:
		return float64(*p)
	case *int8:
		return float64(*p)
	case *int16:
		return float64(*p)
	case *int32:
		return float64(*p)
	case *int64:
		return float64(*p)
	case *uint:
		return float64(*p)
	case *uint8:
		return float64(*p)
	case *uint16:
		return float64(*p)
	case *uint32:
		return float64(*p)
	case *uint64:
		return float64(*p)
	case *float32:
		return float64(*p)
	case *float64:
		return *p
	case *complex64:
		return float64(real(*p))
	case *complex128:
		return real(*p)
	}
	return 0
}

// isInteger reports whether T is an integer type.
func isInteger[T Numeric]() bool {
	var z T
	switch any(z).(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}
