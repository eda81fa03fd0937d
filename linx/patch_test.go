package linx

import (
	"slices"
	"testing"
)

func TestPatchBoxValues(t *testing.T) {
	r := New[int](4, 3).Range(0, 1)
	p := r.Patch(NewBox(Position{1, 0}, Position{2, 1}))
	want := []int{1, 2, 5, 6}
	if got := p.AppendTo(nil); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.Size() != 4 {
		t.Errorf("Size: got %d, want 4", p.Size())
	}
}

func TestPatchGridValues(t *testing.T) {
	r := New[int](4, 4).Range(0, 1)
	p := r.Patch(NewGrid(NewBox(Position{0, 0}, Position{3, 3}), Position{2, 2}))
	want := []int{0, 2, 8, 10}
	if got := p.AppendTo(nil); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPatchLineValues(t *testing.T) {
	r := New[int](4, 3).Range(0, 1)
	p := r.Patch(NewLine(1, Position{2, 0}, 2, 1))
	want := []int{2, 6, 10}
	if got := p.AppendTo(nil); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPatchMaskValues(t *testing.T) {
	r := New[int](5, 5).Range(0, 1)
	p := r.Patch(Ball(1, 1, Position{2, 2}))
	// Cross centered on index 12.
	want := []int{7, 11, 12, 13, 17}
	if got := p.AppendTo(nil); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPatchSequenceValues(t *testing.T) {
	r := New[int](4, 4).Range(0, 1)
	p := r.Patch(Sequence{{3, 3}, {0, 0}, {1, 2}})
	want := []int{15, 0, 9}
	if got := p.AppendTo(nil); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPatchItems(t *testing.T) {
	r := New[int](3, 3).Range(0, 1)
	p := r.Patch(NewBox(Position{1, 1}, Position{2, 2}))
	for pos, v := range p.Items() {
		if want := r.At(pos); v != want {
			t.Errorf("Items at %v: got %d, want %d", pos, v, want)
		}
	}
}

func TestPatchTranslate(t *testing.T) {
	r := New[int](6, 6).Range(0, 1)
	p := r.Patch(NewBox(Position{0, 0}, Position{1, 1}))
	before := p.AppendTo(nil)

	v := Position{2, 3}
	moved := p.Translate(v).AppendTo(nil)
	want := r.Patch(NewBox(Position{2, 3}, Position{3, 4})).AppendTo(nil)
	if !slices.Equal(moved, want) {
		t.Errorf("translated values: got %v, want %v", moved, want)
	}

	after := p.TranslateBack(v).AppendTo(nil)
	if !slices.Equal(before, after) {
		t.Errorf("round trip: got %v, want %v", after, before)
	}
}

func TestPatchNestedTranslate(t *testing.T) {
	r := New[int](8, 8).Range(0, 1)
	p := r.Patch(NewBox(Position{1, 1}, Position{2, 2}))
	before := p.AppendTo(nil)

	// Stacked translations undone in reverse order restore the view.
	a, b := Position{3, 0}, Position{1, 4}
	p.Translate(a)
	p.Translate(b)
	p.TranslateBack(b)
	p.TranslateBack(a)

	if got := p.AppendTo(nil); !slices.Equal(got, before) {
		t.Errorf("got %v, want %v", got, before)
	}
}

func TestPatchFill(t *testing.T) {
	r := New[int](4, 4)
	r.Patch(NewBox(Position{1, 1}, Position{2, 2})).Fill(7)
	sum := 0
	for _, v := range r.Data() {
		sum += v
	}
	if sum != 4*7 {
		t.Errorf("sum: got %d, want 28", sum)
	}
	if r.At(Position{0, 0}) != 0 || r.At(Position{1, 1}) != 7 {
		t.Error("Fill wrote outside the patch or missed it")
	}
}

func TestPatchApplyGenerate(t *testing.T) {
	r := New[int](3, 3).Fill(1)
	r.Patch(NewBox(Position{0, 0}, Position{2, 0})).Apply(func(v int) int { return v * 10 })
	if r.At(Position{1, 0}) != 10 || r.At(Position{1, 1}) != 1 {
		t.Error("Apply wrote outside the row or missed it")
	}

	n := 0
	r.Patch(NewLine(0, Position{0, 2}, 2, 1)).Generate(func() int { n++; return n })
	if r.At(Position{0, 2}) != 1 || r.At(Position{2, 2}) != 3 {
		t.Error("Generate order does not follow the region order")
	}
}

func TestPatchOfReadOnlySourcePanics(t *testing.T) {
	r := New[int](3, 3)
	p := ExtrapolateConstant(r, 0).Patch(r.Domain())
	if p.Mutable() {
		t.Fatal("extrapolator patch reports mutable")
	}
	defer func() {
		if recover() == nil {
			t.Error("Fill on a read-only patch did not panic")
		}
	}()
	p.Fill(1)
}

func TestPatchRasterize(t *testing.T) {
	r := New[int](5, 5).Range(0, 1)
	out := r.Patch(NewBox(Position{1, 2}, Position{3, 3})).Rasterize()
	if !out.Shape().Equal(Position{3, 2}) {
		t.Errorf("Shape: got %v, want [3 2]", out.Shape())
	}
	if got := out.At(Position{0, 0}); got != 11 {
		t.Errorf("anchor value: got %d, want 11", got)
	}
	if got := out.At(Position{2, 1}); got != 18 {
		t.Errorf("corner value: got %d, want 18", got)
	}
}

func TestPatchContiguous(t *testing.T) {
	r := New[int](4, 3, 2)
	cases := []struct {
		name   string
		region Region
		want   bool
	}{
		{"unit row", NewLine(0, Position{0, 1, 0}, 3, 1), true},
		{"strided row", NewLine(0, Position{0, 1, 0}, 3, 2), false},
		{"column", NewLine(1, Position{0, 0, 0}, 2, 1), false},
		{"full planes", NewBox(Position{0, 0, 0}, Position{3, 2, 1}), true},
		{"plane prefix", NewBox(Position{0, 0, 0}, Position{3, 1, 0}), true},
		{"inner box", NewBox(Position{1, 0, 0}, Position{2, 2, 1}), false},
		{"mask", Ball(1, 1, Position{1, 1, 1}), false},
	}
	for _, c := range cases {
		if got := r.Patch(c.region).Contiguous(); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
