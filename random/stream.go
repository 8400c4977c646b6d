package random

import (
	"github.com/Adela0814/xtensor/tensor"
)

// stream reconciles an engine's sequential draw order with random-access
// element requests. It owns a private engine copy and records that engine's
// initial state before any draw; the recorded snapshot is the only valid
// rewind target and is shared across copies of the stream.
//
// Every access mutates the engine, the sampler, and the cursor in place, so
// a stream must not be used from more than one goroutine without external
// serialization.
type stream[T any] struct {
	engine  *Engine
	smp     sampler[T]
	strides []int
	initial *Snapshot

	// cursor is the linear canonical position of the last value served,
	// -1 before the first draw.
	cursor int
}

func newStream[T any](engine *Engine, smp sampler[T], shape tensor.Shape) *stream[T] {
	return &stream[T]{
		engine:  engine,
		smp:     smp,
		strides: shape.Strides(),
		initial: engine.Snapshot(),
		cursor:  -1,
	}
}

// at returns the value at the given multi-index. Ascending row-major access
// costs one draw per element; any out-of-order or repeated access rewinds
// the engine to its initial state and replays the stream up to the requested
// position, so the cost of an access depends on the traversal order.
func (st *stream[T]) at(ix []int) T {
	target := 0
	for i, v := range ix {
		target += v * st.strides[i]
	}

	st.cursor++
	if st.cursor == target {
		// The next position in sequence was requested.
		return st.smp.draw(st.engine)
	}

	if target < st.cursor {
		// A position at or before the cursor was requested. Replay from the
		// start: the sampler may consume a variable number of engine draws
		// per value, so the engine alone cannot be seeked to an arbitrary
		// position.
		st.engine.Restore(st.initial)
		st.smp.reset()
		st.cursor = 0
	}
	for ; st.cursor < target; st.cursor++ {
		st.smp.draw(st.engine)
	}
	return st.smp.draw(st.engine)
}
