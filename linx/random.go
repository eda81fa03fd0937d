// Copyright 2026 The linx Authors. SPDX-License-Identifier: Apache-2.0

package linx

import (
	"math"
	"math/rand/v2"
)

// NoiseGenerator draws random values and perturbs existing ones.
//
// Sample draws a value from the generator's own distribution.
// ApplyTo perturbs an input value, e.g. by adding a draw to it or by
// drawing from a distribution parametrized by the input.
type NoiseGenerator[T Numeric] interface {
	Sample() T
	ApplyTo(x T) T
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// sampleComponents builds a value of type T from one draw per real
// component, so complex types get independent real and imaginary parts.
func sampleComponents[T Numeric](draw func() float64) T {
	var out T
	switch p := any(&out).(type) {
	case *complex64:
		*p = complex(float32(draw()), float32(draw()))
	case *complex128:
		*p = complex(draw(), draw())
	case *float32:
		*p = float32(draw())
	case *float64:
		*p = draw()
	default:
		return roundToInt[T](draw())
	}
	return out
}

// roundToInt converts a float draw to an integer-valued T by rounding
// to nearest.
func roundToInt[T Numeric](f float64) T {
	r := int(math.Round(f))
	return fromInt[T](r)
}

// UniformNoise draws uniformly from [min, max]. The bounds are
// inclusive for integer types and half-open for floating point ones.
type UniformNoise[T Numeric] struct {
	rng      *rand.Rand
	min, max float64
}

// NewUniformNoise seeds a uniform generator over [min, max].
func NewUniformNoise[T Numeric](seed uint64, min, max T) *UniformNoise[T] {
	return &UniformNoise[T]{rng: newRand(seed), min: toFloat(min), max: toFloat(max)}
}

func (u *UniformNoise[T]) draw() float64 {
	if isInteger[T]() {
		lo, hi := int64(u.min), int64(u.max)
		return float64(lo + u.rng.Int64N(hi-lo+1))
	}
	return u.min + u.rng.Float64()*(u.max-u.min)
}

// Sample draws one uniform value.
func (u *UniformNoise[T]) Sample() T { return sampleComponents[T](u.draw) }

// ApplyTo adds a uniform draw to x.
func (u *UniformNoise[T]) ApplyTo(x T) T { return x + u.Sample() }

// GaussianNoise draws from a normal distribution. For integer types the
// draws are rounded to nearest.
type GaussianNoise[T Numeric] struct {
	rng         *rand.Rand
	mean, stdev float64
}

// NewGaussianNoise seeds a Gaussian generator with the given mean and
// standard deviation.
func NewGaussianNoise[T Numeric](seed uint64, mean, stdev float64) *GaussianNoise[T] {
	return &GaussianNoise[T]{rng: newRand(seed), mean: mean, stdev: stdev}
}

func (g *GaussianNoise[T]) draw() float64 {
	return g.rng.NormFloat64()*g.stdev + g.mean
}

// Sample draws one Gaussian value.
func (g *GaussianNoise[T]) Sample() T { return sampleComponents[T](g.draw) }

// ApplyTo adds a Gaussian draw to x.
func (g *GaussianNoise[T]) ApplyTo(x T) T { return x + g.Sample() }

// PoissonNoise draws from a Poisson distribution. Sample uses the
// generator's mean; ApplyTo draws with the input value as the mean,
// which models shot noise. The number of underlying uniform draws
// depends on the means, so applying to one value shifts the stream for
// the following ones; see StablePoissonNoise for a version that does
// not.
type PoissonNoise[T Numeric] struct {
	rng  *rand.Rand
	mean float64
}

// NewPoissonNoise seeds a Poisson generator with the given mean.
func NewPoissonNoise[T Numeric](seed uint64, mean float64) *PoissonNoise[T] {
	return &PoissonNoise[T]{rng: newRand(seed), mean: mean}
}

// Sample draws one Poisson value with the generator's mean.
func (p *PoissonNoise[T]) Sample() T {
	return fromInt[T](poissonDraw(p.rng, p.mean))
}

// ApplyTo draws a Poisson value with mean x.
func (p *PoissonNoise[T]) ApplyTo(x T) T {
	return fromInt[T](poissonDraw(p.rng, toFloat(x)))
}

// StablePoissonNoise is a Poisson generator whose draws are mutually
// independent: each call derives a fresh sub-seed from a dedicated
// seeder stream, so perturbing one value never changes the outcome for
// another. This makes results reproducible under any evaluation order
// at the cost of one generator setup per draw.
type StablePoissonNoise[T Numeric] struct {
	seeder *rand.Rand
	mean   float64
}

// NewStablePoissonNoise seeds a stable Poisson generator. Seed 0 is a
// valid, deterministic default.
func NewStablePoissonNoise[T Numeric](seed uint64, mean float64) *StablePoissonNoise[T] {
	return &StablePoissonNoise[T]{seeder: newRand(seed), mean: mean}
}

func (p *StablePoissonNoise[T]) draw(mean float64) int {
	sub := rand.New(rand.NewPCG(p.seeder.Uint64(), p.seeder.Uint64()))
	return poissonDraw(sub, mean)
}

// Sample draws one Poisson value with the generator's mean.
func (p *StablePoissonNoise[T]) Sample() T { return fromInt[T](p.draw(p.mean)) }

// ApplyTo draws a Poisson value with mean x.
func (p *StablePoissonNoise[T]) ApplyTo(x T) T { return fromInt[T](p.draw(toFloat(x))) }

// poissonDraw samples a Poisson variate. Small means use Knuth's
// product method; large means fall back to a rounded normal
// approximation, which is accurate enough for noise synthesis.
func poissonDraw(rng *rand.Rand, mean float64) int {
	if mean <= 0 {
		return 0
	}
	if mean > 30 {
		n := math.Round(rng.NormFloat64()*math.Sqrt(mean) + mean)
		if n < 0 {
			return 0
		}
		return int(n)
	}
	limit := math.Exp(-mean)
	k := 0
	for p := rng.Float64(); p > limit; p *= rng.Float64() {
		k++
	}
	return k
}

// ImpulseNoise replaces each input with one of a set of impulse values,
// each with its own probability, and otherwise leaves it unchanged.
type ImpulseNoise[T Numeric] struct {
	rng    *rand.Rand
	values []T
	probs  []float64
}

// NewImpulseNoise seeds an impulse generator. Each values[i] replaces
// the input with probability probs[i]; the probabilities must sum to at
// most 1.
func NewImpulseNoise[T Numeric](seed uint64, values []T, probs []float64) *ImpulseNoise[T] {
	if len(values) != len(probs) {
		err := &SizeMismatchError{Name: "impulse probabilities", Expected: len(values), Actual: len(probs)}
		panic(err)
	}
	return &ImpulseNoise[T]{rng: newRand(seed), values: values, probs: probs}
}

// SaltAndPepper builds an impulse generator which replaces inputs with
// max (salt) or min (pepper), each with probability prob/2.
func SaltAndPepper[T Numeric](seed uint64, min, max T, prob float64) *ImpulseNoise[T] {
	return NewImpulseNoise(seed, []T{max, min}, []float64{prob / 2, prob / 2})
}

// Sample draws an impulse value or zero when no impulse fires.
func (n *ImpulseNoise[T]) Sample() T {
	var zero T
	return n.ApplyTo(zero)
}

// ApplyTo replaces x with an impulse value or returns it unchanged.
func (n *ImpulseNoise[T]) ApplyTo(x T) T {
	u := n.rng.Float64()
	acc := 0.0
	for i, p := range n.probs {
		acc += p
		if u < acc {
			return n.values[i]
		}
	}
	return x
}

// AddNoise perturbs every element of a raster in place.
func AddNoise[T Numeric](r *Raster[T], gen NoiseGenerator[T]) *Raster[T] {
	data := r.Data()
	for i, v := range data {
		data[i] = gen.ApplyTo(v)
	}
	return r
}
