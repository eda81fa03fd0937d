package linx

import "testing"

func TestUniformNoiseRange(t *testing.T) {
	u := NewUniformNoise[int](1, 3, 5)
	for i := 0; i < 200; i++ {
		v := u.Sample()
		if v < 3 || v > 5 {
			t.Fatalf("draw %d: %d outside [3, 5]", i, v)
		}
	}
	f := NewUniformNoise[float64](1, -1, 1)
	for i := 0; i < 200; i++ {
		v := f.Sample()
		if v < -1 || v >= 1 {
			t.Fatalf("draw %d: %v outside [-1, 1)", i, v)
		}
	}
}

func TestNoiseDeterminism(t *testing.T) {
	a := NewGaussianNoise[float64](42, 0, 1)
	b := NewGaussianNoise[float64](42, 0, 1)
	for i := 0; i < 50; i++ {
		if va, vb := a.Sample(), b.Sample(); va != vb {
			t.Fatalf("draw %d: %v != %v", i, va, vb)
		}
	}
	c := NewGaussianNoise[float64](43, 0, 1)
	same := true
	for i := 0; i < 50; i++ {
		if a.Sample() != c.Sample() {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

func TestGaussianNoiseApply(t *testing.T) {
	g := NewGaussianNoise[float64](7, 0, 1)
	h := NewGaussianNoise[float64](7, 0, 1)
	x := 100.0
	if got, want := g.ApplyTo(x), x+h.Sample(); got != want {
		t.Errorf("ApplyTo: got %v, want %v", got, want)
	}
}

func TestGaussianNoiseIntRounds(t *testing.T) {
	g := NewGaussianNoise[int16](5, 100, 0)
	if got := g.Sample(); got != 100 {
		t.Errorf("zero-stdev sample: got %d, want 100", got)
	}
}

func TestPoissonNoiseMean(t *testing.T) {
	p := NewPoissonNoise[int](11, 4)
	n := 10000
	sum := 0
	for i := 0; i < n; i++ {
		v := p.Sample()
		if v < 0 {
			t.Fatalf("negative draw %d", v)
		}
		sum += v
	}
	mean := float64(sum) / float64(n)
	if mean < 3.8 || mean > 4.2 {
		t.Errorf("sample mean: got %v, want about 4", mean)
	}
}

func TestPoissonNoiseLargeMean(t *testing.T) {
	p := NewPoissonNoise[int](11, 1000)
	n := 2000
	sum := 0
	for i := 0; i < n; i++ {
		sum += p.Sample()
	}
	mean := float64(sum) / float64(n)
	if mean < 990 || mean > 1010 {
		t.Errorf("sample mean: got %v, want about 1000", mean)
	}
}

func TestPoissonNoiseZeroMean(t *testing.T) {
	p := NewPoissonNoise[int](3, 0)
	if got := p.ApplyTo(0); got != 0 {
		t.Errorf("ApplyTo(0): got %d, want 0", got)
	}
}

// Stable draws depend only on their rank in the call sequence, not on
// the means of the preceding calls.
func TestStablePoissonIndependence(t *testing.T) {
	a := NewStablePoissonNoise[int](7, 10)
	b := NewStablePoissonNoise[int](7, 10)

	a.ApplyTo(25) // small mean, few underlying draws
	b.ApplyTo(3000) // large mean, different draw count

	for i := 0; i < 20; i++ {
		if va, vb := a.Sample(), b.Sample(); va != vb {
			t.Fatalf("draw %d diverged after different histories: %d != %d", i, va, vb)
		}
	}
}

func TestStablePoissonDefaultSeed(t *testing.T) {
	a := NewStablePoissonNoise[int](0, 5)
	b := NewStablePoissonNoise[int](0, 5)
	if a.Sample() != b.Sample() {
		t.Error("seed 0 is not reproducible")
	}
}

func TestImpulseNoise(t *testing.T) {
	always := NewImpulseNoise[int](3, []int{-7}, []float64{1})
	for i := 0; i < 20; i++ {
		if got := always.ApplyTo(i); got != -7 {
			t.Fatalf("probability 1 impulse missed: got %d", got)
		}
	}
	never := NewImpulseNoise[int](3, []int{-7}, []float64{0})
	for i := 0; i < 20; i++ {
		if got := never.ApplyTo(i); got != i {
			t.Fatalf("probability 0 impulse fired: got %d", got)
		}
	}
}

func TestSaltAndPepper(t *testing.T) {
	sp := SaltAndPepper[uint8](9, 0, 255, 1)
	salt, pepper := 0, 0
	for i := 0; i < 1000; i++ {
		switch sp.ApplyTo(128) {
		case 255:
			salt++
		case 0:
			pepper++
		default:
			t.Fatal("full-probability salt and pepper left a value unchanged")
		}
	}
	if salt == 0 || pepper == 0 {
		t.Errorf("unbalanced impulses: %d salt, %d pepper", salt, pepper)
	}
}

func TestAddNoise(t *testing.T) {
	r := New[float64](4, 4).Fill(10)
	AddNoise(r, NewGaussianNoise[float64](21, 0, 1))
	changed := false
	for _, v := range r.Data() {
		if v != 10 {
			changed = true
		}
	}
	if !changed {
		t.Error("noise left every element unchanged")
	}

	q := New[int](4, 4).Range(0, 1)
	want := q.Copy()
	AddNoise(q, NewImpulseNoise[int](3, []int{99}, []float64{0}))
	if !q.Equal(want) {
		t.Error("zero-probability noise mutated the raster")
	}
}
