package linx

import (
	"math"
	"slices"
	"testing"
)

func TestDistributionMoments(t *testing.T) {
	d := NewDistribution([]float64{4, 1, 3, 2, 5})
	if d.Size() != 5 {
		t.Errorf("Size: got %d, want 5", d.Size())
	}
	if d.Sum() != 15 {
		t.Errorf("Sum: got %v, want 15", d.Sum())
	}
	if d.Mean() != 3 {
		t.Errorf("Mean: got %v, want 3", d.Mean())
	}
	if got := d.Variance(false); math.Abs(got-2) > 1e-12 {
		t.Errorf("biased Variance: got %v, want 2", got)
	}
	if got := d.Variance(true); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("unbiased Variance: got %v, want 2.5", got)
	}
	if got := d.Stdev(true); math.Abs(got-math.Sqrt(2.5)) > 1e-12 {
		t.Errorf("Stdev: got %v", got)
	}
}

func TestDistributionOrderStatistics(t *testing.T) {
	d := NewDistribution([]int{8, 3, 5, 1, 9, 2})
	if d.Min() != 1 || d.Max() != 9 {
		t.Errorf("Min %d Max %d, want 1 and 9", d.Min(), d.Max())
	}
	if got := d.Nth(2); got != 3 {
		t.Errorf("Nth(2): got %d, want 3", got)
	}
	if got := d.Median(); got != 4 {
		t.Errorf("Median: got %v, want 4", got)
	}
}

func TestDistributionQuantile(t *testing.T) {
	d := NewDistribution([]float64{1, 2, 3, 4, 5})
	if got := d.Quantile(0); got != 1 {
		t.Errorf("Quantile(0): got %v, want 1", got)
	}
	if got := d.Quantile(1); got != 5 {
		t.Errorf("Quantile(1): got %v, want 5", got)
	}
	if got := d.Quantile(0.25); got != 2 {
		t.Errorf("Quantile(0.25): got %v, want 2", got)
	}
	// Between order statistics, the blend weights the lower one by the
	// fractional part: 0.4*1 + 0.6*2.
	if got := d.Quantile(0.1); math.Abs(got-1.6) > 1e-12 {
		t.Errorf("Quantile(0.1): got %v, want 1.6", got)
	}
}

func TestDistributionMad(t *testing.T) {
	d := NewDistribution([]float64{1, 2, 3, 4, 5})
	if got := d.Mad(); got != 1 {
		t.Errorf("Mad: got %v, want 1", got)
	}
}

func TestDistributionHistogram(t *testing.T) {
	d := NewDistribution([]int{1, 2, 2, 3, 5, 0, 6})
	got := d.Histogram([]int{1, 2, 4, 5})
	// 0 and 6 fall outside; the last bin is closed so 5 counts.
	want := []int{1, 3, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Histogram: got %v, want %v", got, want)
	}
}

func TestDistributionOfRaster(t *testing.T) {
	r := New[float64](3, 3).Range(0, 1)
	d := DistributionOf(r)
	if d.Size() != 9 || d.Mean() != 4 {
		t.Errorf("Size %d Mean %v, want 9 and 4", d.Size(), d.Mean())
	}
	// The distribution copies: mutating the raster leaves it unchanged.
	r.Fill(0)
	if d.Max() != 8 {
		t.Errorf("Max after raster mutation: got %v, want 8", d.Max())
	}
}

func TestNthElement(t *testing.T) {
	values := []int{7, 2, 9, 4, 1, 8, 3, 6, 5, 0}
	for n := range values {
		v := slices.Clone(values)
		if got := NthElement(v, n); got != n {
			t.Errorf("NthElement(%d): got %d", n, got)
		}
		if v[n] != n {
			t.Errorf("position %d not settled: %v", n, v)
		}
	}
}

func TestNthElementDuplicates(t *testing.T) {
	values := []int{5, 5, 5, 1, 1, 9}
	if got := NthElement(slices.Clone(values), 2); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
	if got := NthElement(slices.Clone(values), 0); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := NthElement(slices.Clone(values), 5); got != 9 {
		t.Errorf("got %d, want 9", got)
	}
}
