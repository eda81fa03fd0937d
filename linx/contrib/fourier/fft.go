// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package fourier

import (
	"math"
	"math/cmplx"
)

// twiddleFactors returns the n/2 unit roots exp(-2i pi k / n) for the
// forward direction, conjugated for the inverse.
func twiddleFactors(n int, dir Direction) []complex128 {
	sign := -1.0
	if dir == Inverse {
		sign = 1.0
	}
	tw := make([]complex128, n/2)
	for k := range tw {
		tw[k] = cmplx.Exp(complex(0, sign*2*math.Pi*float64(k)/float64(n)))
	}
	return tw
}

// radix2 transforms data in place with the iterative decimation-in-time
// algorithm: bit-reversal permutation, then butterflies of doubling
// span. len(data) must be a power of two and tw must hold the matching
// len(data)/2 twiddle factors. The inverse direction folds the 1/n
// scaling into the final pass.
func radix2(data []complex128, tw []complex128, dir Direction) {
	n := len(data)
	if n < 2 {
		return
	}

	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	for span := 2; span <= n; span <<= 1 {
		half := span >> 1
		step := n / span
		for start := 0; start < n; start += span {
			k := 0
			for i := start; i < start+half; i++ {
				u := data[i]
				v := data[i+half] * tw[k]
				data[i] = u + v
				data[i+half] = u - v
				k += step
			}
		}
	}

	if dir == Inverse {
		s := complex(1/float64(n), 0)
		for i := range data {
			data[i] *= s
		}
	}
}
