package linx

import (
	"slices"
	"testing"
)

func TestRasterInPlaceArithmetic(t *testing.T) {
	a := New[int](2, 2).Range(1, 1)
	b := New[int](2, 2).Fill(10)
	a.Add(b)
	if !slices.Equal(a.Data(), []int{11, 12, 13, 14}) {
		t.Errorf("Add: got %v", a.Data())
	}
	a.Sub(b)
	if !slices.Equal(a.Data(), []int{1, 2, 3, 4}) {
		t.Errorf("Sub: got %v", a.Data())
	}
	a.Mul(b)
	if !slices.Equal(a.Data(), []int{10, 20, 30, 40}) {
		t.Errorf("Mul: got %v", a.Data())
	}
	a.Div(b)
	if !slices.Equal(a.Data(), []int{1, 2, 3, 4}) {
		t.Errorf("Div: got %v", a.Data())
	}
	a.AddScalar(5).MulScalar(2)
	if !slices.Equal(a.Data(), []int{12, 14, 16, 18}) {
		t.Errorf("chained scalar ops: got %v", a.Data())
	}
}

func TestRasterOutOfPlaceArithmetic(t *testing.T) {
	a := New[int](3).Range(1, 1)
	b := New[int](3).Fill(2)
	sum := a.Plus(b)
	if !slices.Equal(sum.Data(), []int{3, 4, 5}) {
		t.Errorf("Plus: got %v", sum.Data())
	}
	// Operands are untouched.
	if !slices.Equal(a.Data(), []int{1, 2, 3}) || !slices.Equal(b.Data(), []int{2, 2, 2}) {
		t.Errorf("operands mutated: %v, %v", a.Data(), b.Data())
	}
	if got := a.Times(b).Data(); !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("Times: got %v", got)
	}
	if got := a.MinusScalar(1).Data(); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("MinusScalar: got %v", got)
	}
}

func TestRasterNegate(t *testing.T) {
	a := New[int](3).Range(-1, 1)
	a.Negate()
	if !slices.Equal(a.Data(), []int{1, 0, -1}) {
		t.Errorf("Negate: got %v", a.Data())
	}
}

func TestRasterModulo(t *testing.T) {
	a := New[int](4).Range(5, 5)
	got := ModuloScalar(a, 7)
	if !slices.Equal(got.Data(), []int{5, 3, 1, 6}) {
		t.Errorf("ModuloScalar: got %v", got.Data())
	}
	if !slices.Equal(a.Data(), []int{5, 10, 15, 20}) {
		t.Errorf("operand mutated: %v", a.Data())
	}
	b := New[int](4).Fill(4)
	Mod(a, b)
	if !slices.Equal(a.Data(), []int{1, 2, 3, 0}) {
		t.Errorf("Mod: got %v", a.Data())
	}
}

func TestRasterEqual(t *testing.T) {
	a := New[int](2, 3).Range(0, 1)
	if !a.Equal(a.Copy()) {
		t.Error("raster not equal to its copy")
	}
	if a.Equal(New[int](3, 2).Range(0, 1)) {
		t.Error("different shapes reported equal")
	}
	c := a.Copy()
	c.Set(Position{0, 0}, 99)
	if a.Equal(c) {
		t.Error("different elements reported equal")
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*SizeMismatchError); !ok {
			t.Fatal("expected *SizeMismatchError")
		}
	}()
	New[int](2, 2).Add(New[int](2, 3))
}

func TestComplexArithmetic(t *testing.T) {
	a := New[complex128](2).Fill(1 + 2i)
	b := New[complex128](2).Fill(3 - 1i)
	got := a.Times(b).Data()
	want := complex128(5 + 5i)
	for i, v := range got {
		if v != want {
			t.Errorf("element %d: got %v, want %v", i, v, want)
		}
	}
	if Conj(1+2i) != 1-2i {
		t.Errorf("Conj: got %v", Conj(1+2i))
	}
}
