package linx

import "testing"

func TestVectorArithmetic(t *testing.T) {
	v := Vector[int]{1, 2, 3}
	w := Vector[int]{10, 20, 30}

	if got := v.Plus(w); !got.Equal(Vector[int]{11, 22, 33}) {
		t.Errorf("Plus: got %v, want [11 22 33]", got)
	}
	if got := w.Minus(v); !got.Equal(Vector[int]{9, 18, 27}) {
		t.Errorf("Minus: got %v, want [9 18 27]", got)
	}
	if got := v.Times(w); !got.Equal(Vector[int]{10, 40, 90}) {
		t.Errorf("Times: got %v, want [10 40 90]", got)
	}
	if got := w.Over(v); !got.Equal(Vector[int]{10, 10, 10}) {
		t.Errorf("Over: got %v, want [10 10 10]", got)
	}
	if got := v.PlusScalar(5); !got.Equal(Vector[int]{6, 7, 8}) {
		t.Errorf("PlusScalar: got %v, want [6 7 8]", got)
	}
	if got := v.Negated(); !got.Equal(Vector[int]{-1, -2, -3}) {
		t.Errorf("Negated: got %v, want [-1 -2 -3]", got)
	}
	// v is untouched by the out-of-place forms.
	if !v.Equal(Vector[int]{1, 2, 3}) {
		t.Errorf("operand mutated: %v", v)
	}
}

func TestVectorInPlace(t *testing.T) {
	v := Vector[int]{1, 2, 3}
	v.Add(Vector[int]{1, 1, 1})
	if !v.Equal(Vector[int]{2, 3, 4}) {
		t.Errorf("Add: got %v, want [2 3 4]", v)
	}
	v.Sub(Vector[int]{2, 2, 2})
	if !v.Equal(Vector[int]{0, 1, 2}) {
		t.Errorf("Sub: got %v, want [0 1 2]", v)
	}
	v.Inc()
	if !v.Equal(Vector[int]{1, 2, 3}) {
		t.Errorf("Inc: got %v, want [1 2 3]", v)
	}
	v.Dec()
	if !v.Equal(Vector[int]{0, 1, 2}) {
		t.Errorf("Dec: got %v, want [0 1 2]", v)
	}
}

func TestVectorSizeMismatchPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(*SizeMismatchError)
		if !ok {
			t.Fatalf("expected *SizeMismatchError, got %v", err)
		}
	}()
	Vector[int]{1, 2}.Plus(Vector[int]{1, 2, 3})
}

func TestVectorPredicates(t *testing.T) {
	if !Zeros[int](3).IsZero() {
		t.Error("Zeros is not zero")
	}
	if !Ones[int](3).IsOne() {
		t.Error("Ones is not one")
	}
	if !Infs[float64](2).IsInf() {
		t.Error("Infs is not inf")
	}
	if (Vector[int]{0, 1, 0}).IsZero() {
		t.Error("[0 1 0] reported zero")
	}
}

func TestVectorCloneIsDeep(t *testing.T) {
	v := Vector[int]{1, 2, 3}
	w := v.Clone()
	w[0] = 99
	if v[0] != 1 {
		t.Errorf("Clone shares storage: v[0] = %d", v[0])
	}
}

func TestVectorSliceExtend(t *testing.T) {
	v := Vector[int]{5, 6, 7, 8}
	if got := v.Slice(2); !got.Equal(Vector[int]{5, 6}) {
		t.Errorf("Slice: got %v, want [5 6]", got)
	}
	short := Vector[int]{5, 6}
	if got := short.Extend(Vector[int]{0, 0, 1, 2}); !got.Equal(Vector[int]{5, 6, 1, 2}) {
		t.Errorf("Extend: got %v, want [5 6 1 2]", got)
	}
}

func TestNorm(t *testing.T) {
	v := Vector[int]{-3, 0, 4}
	if got := Norm(v, 0); got != 2 {
		t.Errorf("L0: got %d, want 2", got)
	}
	if got := Norm(v, 1); got != 7 {
		t.Errorf("L1: got %d, want 7", got)
	}
	if got := Norm(v, 2); got != 25 {
		t.Errorf("L2: got %d, want 25", got)
	}
}

func TestNormBadPowerPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*OutOfBoundsError); !ok {
			t.Fatal("expected *OutOfBoundsError")
		}
	}()
	Norm(Vector[int]{1}, 3)
}

func TestEmod(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 3, 1},
		{-1, 3, 2},
		{-3, 3, 0},
		{-7, 3, 2},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := emod(c.a, c.b); got != c.want {
			t.Errorf("emod(%d, %d): got %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
