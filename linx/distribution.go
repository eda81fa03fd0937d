// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import (
	"math"
	"slices"
	"sort"
)

// DataDistribution estimates distribution parameters of a value sequence.
//
// The values are copied at construction; later changes to the input are
// not reflected. Most estimators rely on partially sorted values and sort
// just enough to answer; repeated queries sort more and more. Call Sort
// up front when many parameters are needed.
type DataDistribution[T Real] struct {
	values []T
	sorted bool
	sum    float64
	sum2   float64
}

// NewDistribution copies values into a fresh distribution.
func NewDistribution[T Real](values []T) *DataDistribution[T] {
	d := &DataDistribution[T]{values: slices.Clone(values)}
	d.sorted = sort.SliceIsSorted(d.values, func(i, j int) bool { return d.values[i] < d.values[j] })
	for _, v := range d.values {
		f := float64(v)
		d.sum += f
		d.sum2 += f * f
	}
	return d
}

// DistributionOf builds the distribution of a raster's elements.
func DistributionOf[T Real](r *Raster[T]) *DataDistribution[T] {
	return NewDistribution(r.Data())
}

// Size returns the number of values.
func (d *DataDistribution[T]) Size() int { return len(d.values) }

// Sum returns the sum of all values.
func (d *DataDistribution[T]) Sum() float64 { return d.sum }

// Sort fully sorts the values, speeding up subsequent order statistics.
func (d *DataDistribution[T]) Sort() {
	if !d.sorted {
		slices.Sort(d.values)
		d.sorted = true
	}
}

// Nth returns the n-th smallest value, partially sorting the values so
// that position n holds it afterwards.
func (d *DataDistribution[T]) Nth(n int) T {
	if d.sorted {
		return d.values[n]
	}
	return NthElement(d.values, n)
}

// Min returns the smallest value.
func (d *DataDistribution[T]) Min() T { return d.Nth(0) }

// Max returns the largest value.
func (d *DataDistribution[T]) Max() T { return d.Nth(len(d.values) - 1) }

// Mean returns the arithmetic mean.
func (d *DataDistribution[T]) Mean() float64 {
	return d.sum / float64(len(d.values))
}

// Variance returns the biased (denominator n) or unbiased (denominator
// n-1) sample variance.
func (d *DataDistribution[T]) Variance(unbiased bool) float64 {
	n := float64(len(d.values))
	den := n
	if unbiased {
		den = n - 1
	}
	return (d.sum2 - d.sum*d.sum/n) / den
}

// Stdev returns the sample standard deviation.
func (d *DataDistribution[T]) Stdev(unbiased bool) float64 {
	return math.Sqrt(d.Variance(unbiased))
}

// Median returns the 0.5 quantile.
func (d *DataDistribution[T]) Median() float64 {
	return d.Quantile(0.5)
}

// Quantile returns the q-th quantile for q in [0, 1], with linear
// interpolation between adjacent order statistics. Quantile(0) is the
// min, Quantile(1) the max, Quantile(0.5) the median.
func (d *DataDistribution[T]) Quantile(q float64) float64 {
	n := q * float64(len(d.values)-1)
	f := int(n)
	if n == float64(f) {
		return float64(d.Nth(f))
	}
	w := n - float64(f)
	return float64(d.Nth(f))*w + float64(d.Nth(f+1))*(1-w)
}

// Mad returns the median absolute deviation from the median.
func (d *DataDistribution[T]) Mad() float64 {
	m := d.Median()
	absdev := make([]float64, len(d.values))
	for i, v := range d.values {
		absdev[i] = math.Abs(float64(v) - m)
	}
	return NewDistribution(absdev).Median()
}

// Histogram counts the values falling into the bins bounded by the k+1
// given bounds. Bin i covers [bins[i], bins[i+1]); the last bin also
// includes its upper bound. bins must be sorted ascending.
func (d *DataDistribution[T]) Histogram(bins []T) []int {
	d.Sort()
	out := make([]int, len(bins)-1)
	i := 0
	for i < len(d.values) && d.values[i] < bins[0] {
		i++
	}
	for b := 0; b < len(out); b++ {
		sup := bins[b+1]
		for i < len(d.values) && d.values[i] < sup {
			out[b]++
			i++
		}
	}
	// Closed upper edge of the last bin.
	for i < len(d.values) && d.values[i] == bins[len(bins)-1] {
		out[len(out)-1]++
		i++
	}
	return out
}

// NthElement partially sorts values so that position n holds the n-th
// smallest value, and returns it. It is a Hoare quickselect with
// median-of-three pivoting.
func NthElement[T Real](values []T, n int) T {
	lo, hi := 0, len(values)-1
	for lo < hi {
		pivot := medianOfThree(values[lo], values[(lo+hi)/2], values[hi])
		i, j := lo, hi
		for i <= j {
			for values[i] < pivot {
				i++
			}
			for values[j] > pivot {
				j--
			}
			if i <= j {
				values[i], values[j] = values[j], values[i]
				i++
				j--
			}
		}
		if n <= j {
			hi = j
		} else if n >= i {
			lo = i
		} else {
			break
		}
	}
	return values[n]
}

func medianOfThree[T Real](a, b, c T) T {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	return max(a, b)
}
