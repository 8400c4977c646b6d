// Package random builds lazily evaluated array expressions of pseudo-random
// numbers. Any element can be read in any order, and the value at a
// coordinate is always what a fully materialized array generated in
// canonical row-major order would hold at that position.
//
// Generators built from the same engine draw from non-overlapping regions of
// its stream, and equally-seeded engines reproduce the same arrays.
package random

import (
	"golang.org/x/exp/constraints"

	"github.com/Adela0814/xtensor/tensor"
)

const defaultSeed = 1

var defaultEngine *Engine

// DefaultEngine returns the process-wide engine used when a constructor is
// given a nil engine. It is created on first use and lives for the rest of
// the process. Like any Engine it is not safe for concurrent use.
func DefaultEngine() *Engine {
	if defaultEngine == nil {
		defaultEngine = NewEngine(defaultSeed)
	}
	return defaultEngine
}

// SetSeed reseeds the process-wide default engine.
func SetSeed(seed uint64) {
	DefaultEngine().Seed(seed)
}

// newRandomGenerator wires a sampler to a lazy generator and partitions the
// caller's stream: the generator works on a private copy of eng taken now,
// with its pre-draw state recorded for rewinds, and eng itself is advanced
// past the generator's element count so the next generator built from the
// same engine starts where this one's logical stream ends.
func newRandomGenerator[T any](shape tensor.Shape, smp sampler[T], eng *Engine) *tensor.Generator[T] {
	if eng == nil {
		eng = DefaultEngine()
	}
	st := newStream(eng.Clone(), smp, shape)
	g := tensor.NewGenerator(shape, st.at)
	eng.Discard(shape.Size())
	return g
}

// Rand returns a lazy array expression of the given shape whose elements are
// uniformly distributed in [lower, upper). The canonical arguments are
// lower=0, upper=1. Pass a nil engine to draw from the process default.
func Rand[T constraints.Float](shape tensor.Shape, lower, upper T, eng *Engine) *tensor.Generator[T] {
	return newRandomGenerator(shape, uniformSampler[T]{lower: lower, upper: upper}, eng)
}

// RandInt returns a lazy array expression of the given shape whose elements
// are integers uniformly distributed in [lower, upper), upper exclusive.
// Pass a nil engine to draw from the process default.
func RandInt[T constraints.Integer](shape tensor.Shape, lower, upper T, eng *Engine) *tensor.Generator[T] {
	return newRandomGenerator(shape, intSampler[T]{lower: lower, upper: upper}, eng)
}

// RandN returns a lazy array expression of the given shape whose elements
// are drawn from the normal distribution with the given mean and standard
// deviation. The canonical arguments are mean=0, stdDev=1. Pass a nil engine
// to draw from the process default.
func RandN[T constraints.Float](shape tensor.Shape, mean, stdDev T, eng *Engine) *tensor.Generator[T] {
	return newRandomGenerator(shape, normalSampler[T]{mean: mean, stdDev: stdDev}, eng)
}
