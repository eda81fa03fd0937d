// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package filters

import (
	"testing"

	"github.com/linxgo/linx/linx"
)

func window3x3() linx.Box {
	return linx.BoxFromCenter(1, linx.Position{0, 0})
}

func TestMeanFilter(t *testing.T) {
	in := linx.New[float64](5, 5).Fill(3)
	out := Mean[float64](window3x3()).Crop(in)
	for _, v := range out.Data() {
		if v != 3 {
			t.Fatalf("mean of a constant field: got %v, want 3", v)
		}
	}
}

func TestMeanFilterInteger(t *testing.T) {
	in := linx.New[int32](3, 3).Range(0, 1)
	f := Mean[int32](window3x3())
	// Sum 0..8 is 36, over 9 samples.
	if got := f.At(in, linx.Position{1, 1}); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

func TestMedianFilterOdd(t *testing.T) {
	in, err := linx.Wrap([]int32{9, 1, 7, 3, 5, 2, 8, 4, 6}, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	f := Median[int32](window3x3())
	if got := f.At(in, linx.Position{1, 1}); got != 5 {
		t.Errorf("median of 1..9: got %d, want 5", got)
	}
}

func TestMedianFilterEven(t *testing.T) {
	in, err := linx.Wrap([]int32{4, 1, 3, 2}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	window := linx.NewBox(linx.Position{0, 0}, linx.Position{1, 1})
	f := Median[int32](window)
	// Middle pair of 1 2 3 4 averages to 2 (integer truncation).
	if got := f.At(in, linx.Position{0, 0}); got != 2 {
		t.Errorf("even median: got %d, want 2", got)
	}
}

func TestErosionDilation(t *testing.T) {
	in := linx.New[int32](7, 7).Fill(7)
	in.Set(linx.Position{3, 3}, 1)
	ero := Erosion[int32](window3x3()).Crop(in)
	dil := Dilation[int32](window3x3()).Crop(in)
	// Cropped position (i, j) maps to input position (i+1, j+1). The
	// eroded minimum spreads over the window footprint; the dilated
	// maximum keeps the plateau.
	if got := ero.At(linx.Position{2, 2}); got != 1 {
		t.Errorf("erosion at the pit: got %d, want 1", got)
	}
	if got := ero.At(linx.Position{0, 0}); got != 7 {
		t.Errorf("erosion away from the pit: got %d, want 7", got)
	}
	for _, v := range dil.Data() {
		if v != 7 {
			t.Fatalf("dilation: got %d, want 7", v)
		}
	}
}

func TestErosionWithMaskWindow(t *testing.T) {
	in := linx.New[int32](5, 5).Fill(9)
	in.Set(linx.Position{2, 2}, 2)
	f := Erosion[int32](linx.Ball(1, 1, linx.Position{0, 0}))
	// The cross window at (1, 1) does not reach the center pit.
	ext := linx.ExtrapolateNearest(in)
	if got := f.At(ext, linx.Position{1, 1}); got != 9 {
		t.Errorf("cross at (1,1): got %d, want 9", got)
	}
	if got := f.At(ext, linx.Position{2, 1}); got != 2 {
		t.Errorf("cross at (2,1): got %d, want 2", got)
	}
}

func TestMedianSmoothsImpulse(t *testing.T) {
	in := linx.New[int32](7, 7).Fill(5)
	in.Set(linx.Position{3, 3}, 100)
	out := Median[int32](window3x3()).Run(linx.ExtrapolateNearest(in))
	for _, v := range out.Data() {
		if v != 5 {
			t.Fatalf("impulse survived the median: got %d", v)
		}
	}
}
