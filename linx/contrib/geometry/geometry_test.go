// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package geometry

import (
	"math"
	"testing"

	"github.com/linxgo/linx/linx"
)

const tol = 1e-12

func vecsClose(a, b linx.Vector[float64]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestTranslationApply(t *testing.T) {
	a := Translation(linx.Vector[float64]{1, 2})
	got := a.Apply(linx.Vector[float64]{3, 4})
	if want := (linx.Vector[float64]{4, 6}); !vecsClose(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotationAroundOrigin(t *testing.T) {
	a := RotationRadians(math.Pi/2, 0, 1, linx.Vector[float64]{0, 0})
	got := a.Apply(linx.Vector[float64]{1, 0})
	if want := (linx.Vector[float64]{0, 1}); !vecsClose(got, want) {
		t.Errorf("quarter turn of (1, 0): got %v, want %v", got, want)
	}
}

func TestRotationAroundCenter(t *testing.T) {
	a := RotationDegrees(180, 0, 1, linx.Vector[float64]{1, 1})
	got := a.Apply(linx.Vector[float64]{0, 0})
	if want := (linx.Vector[float64]{2, 2}); !vecsClose(got, want) {
		t.Errorf("half turn of the origin around (1, 1): got %v, want %v", got, want)
	}
}

func TestScalingApply(t *testing.T) {
	a := Scaling(linx.Vector[float64]{2, 3}, linx.Vector[float64]{0, 0})
	got := a.Apply(linx.Vector[float64]{1, 1})
	if want := (linx.Vector[float64]{2, 3}); !vecsClose(got, want) {
		t.Errorf("scaling from origin: got %v, want %v", got, want)
	}

	centered := Scaling(linx.Vector[float64]{2, 3}, linx.Vector[float64]{1, 1})
	got = centered.Apply(linx.Vector[float64]{2, 2})
	if want := (linx.Vector[float64]{3, 4}); !vecsClose(got, want) {
		t.Errorf("scaling from (1, 1): got %v, want %v", got, want)
	}
}

func TestIsotropicScaling(t *testing.T) {
	a := IsotropicScaling(0.5, linx.Vector[float64]{0, 0, 0})
	got := a.Apply(linx.Vector[float64]{2, 4, 6})
	if want := (linx.Vector[float64]{1, 2, 3}); !vecsClose(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInverseUndoesTransform(t *testing.T) {
	a := RotationRadians(0.7, 0, 1, linx.Vector[float64]{0.5, -2}).
		Translate(linx.Vector[float64]{3, -1}).
		ScaleScalar(1.5)
	inv := a.Inverse()
	for _, p := range []linx.Vector[float64]{{0, 0}, {1, 2}, {-3.5, 4.25}} {
		if got := inv.Apply(a.Apply(p)); !vecsClose(got, p) {
			t.Errorf("round trip of %v: got %v", p, got)
		}
	}
}

func TestZeroAngleRotationIsIdentity(t *testing.T) {
	a := RotationRadians(0, 0, 1, linx.Vector[float64]{5, 5})
	p := linx.Vector[float64]{1.25, -7}
	if got := a.Apply(p); !vecsClose(got, p) {
		t.Errorf("got %v, want %v", got, p)
	}
}

func TestSingularInversePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Inverse of zero scaling did not panic")
		}
	}()
	IsotropicScaling(0, linx.Vector[float64]{0, 0}).Inverse()
}

func TestWarpIdentity(t *testing.T) {
	r := linx.New[int32](4, 3).Range(1, 1)
	out := Warp(linx.Interpolate[int32](r, linx.LinearInterp), Identity(2))
	for i, want := range r.Data() {
		if got := out.Data()[i]; got != want {
			t.Errorf("element %d: got %d, want %d", i, got, want)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	// On a 3x3 grid rotated about its center, every preimage is a grid
	// node, so interpolation is exact.
	r := linx.New[int32](3, 3).Range(0, 1)
	out := Rotate(linx.Interpolate[int32](r, linx.LinearInterp), math.Pi/2, 0, 1)

	// The preimage of p is the center plus the quarter turn backwards
	// of p minus the center: (di, dj) maps to (dj, -di).
	if got := out.At(linx.Position{0, 0}); got != r.At(linx.Position{0, 2}) {
		t.Errorf("corner: got %d, want %d", got, r.At(linx.Position{0, 2}))
	}
	if got := out.At(linx.Position{1, 1}); got != r.At(linx.Position{1, 1}) {
		t.Errorf("center: got %d, want %d", got, r.At(linx.Position{1, 1}))
	}
	if got := out.At(linx.Position{2, 1}); got != r.At(linx.Position{1, 0}) {
		t.Errorf("edge: got %d, want %d", got, r.At(linx.Position{1, 0}))
	}
}

func TestShiftReadsThroughExtrapolation(t *testing.T) {
	r := linx.New[float64](3).Range(10, 10)
	ext := linx.ExtrapolateConstant(r, -1)
	out := Shift(linx.Interpolate[float64](ext, linx.LinearInterp), linx.Vector[float64]{1})

	if got := out.At(linx.Position{0}); got != -1 {
		t.Errorf("shifted-in sample: got %g, want -1", got)
	}
	if got := out.At(linx.Position{1}); got != 10 {
		t.Errorf("got %g, want 10", got)
	}
	if got := out.At(linx.Position{2}); got != 20 {
		t.Errorf("got %g, want 20", got)
	}
}

func TestWarpRoundsIntegerElements(t *testing.T) {
	r := linx.New[int32](3).Range(0, 10)
	ext := linx.ExtrapolateNearest(r)
	// A shift by 0.4 lands between nodes: 0.6*v(k) + 0.4*v(k+1).
	out := Shift(linx.Interpolate[int32](ext, linx.LinearInterp), linx.Vector[float64]{-0.4})
	if got := out.At(linx.Position{0}); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}
