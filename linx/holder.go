// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// DefaultAlignment returns the preferred SIMD alignment in bytes for the
// host CPU: 64 under AVX-512, 32 under AVX2 or NEON, 16 otherwise.
func DefaultAlignment() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 64
	case cpu.X86.HasAVX2, cpu.ARM64.HasASIMD:
		return 32
	}
	return 16
}

// alignedSlice allocates an n-element slice whose first element sits on an
// alignment-byte boundary. alignment must be a power of two at least as
// large as the element size.
func alignedSlice[T Numeric](n, alignment int) []T {
	if n == 0 {
		return nil
	}
	var z T
	esz := int(unsafe.Sizeof(z))
	extra := (alignment + esz - 1) / esz
	buf := make([]T, n+extra)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := 0
	if rem := int(addr) & (alignment - 1); rem != 0 {
		off = (alignment - rem) / esz
	}
	return buf[off : off+n : off+n]
}

// AlignmentOf returns the greatest power of two, up to 8192, dividing the
// address of the first element of data. It returns 8192 for empty slices.
func AlignmentOf[T Numeric](data []T) int {
	const limit = 8192
	if len(data) == 0 {
		return limit
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	align := 1
	for align < limit && addr&uintptr(align) == 0 {
		align <<= 1
	}
	return align
}
