package random

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// sampler draws one domain value per call, consuming engine output as a side
// effect. reset clears any memoized state so that the first draw after an
// engine rewind is independent of draws made before it. The samplers below
// hold no such state, but the contract is load-bearing for any sampler that
// caches part of a draw.
type sampler[T any] interface {
	draw(e *Engine) T
	reset()
}

// uniformSampler draws from the continuous uniform distribution on
// [lower, upper).
type uniformSampler[T constraints.Float] struct {
	lower, upper T
}

func (s uniformSampler[T]) draw(e *Engine) T {
	u := distuv.Uniform{Min: float64(s.lower), Max: float64(s.upper), Src: e}
	return T(u.Rand())
}

func (uniformSampler[T]) reset() {}

// intSampler draws integers uniformly from [lower, upper). The span must be
// representable as a uint64; a non-positive span is a caller error.
type intSampler[T constraints.Integer] struct {
	lower, upper T
}

func (s intSampler[T]) draw(e *Engine) T {
	span := uint64(s.upper - s.lower)
	return s.lower + T(rand.New(e).Uint64n(span))
}

func (intSampler[T]) reset() {}

// normalSampler draws from the normal distribution with the given mean and
// standard deviation.
type normalSampler[T constraints.Float] struct {
	mean, stdDev T
}

func (s normalSampler[T]) draw(e *Engine) T {
	n := distuv.Normal{Mu: float64(s.mean), Sigma: float64(s.stdDev), Src: e}
	return T(n.Rand())
}

func (normalSampler[T]) reset() {}
