package random

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Engine is a sequential pseudo-random state machine backed by a PCG source.
// It implements golang.org/x/exp/rand.Source, so gonum's distributions can
// draw from it directly.
//
// An Engine is not safe for concurrent use. Every draw mutates its state.
type Engine struct {
	src rand.PCGSource
}

// NewEngine returns an engine in the deterministic state derived from seed.
func NewEngine(seed uint64) *Engine {
	e := &Engine{}
	e.src.Seed(seed)
	return e
}

// Uint64 returns the next raw draw and advances the engine's state.
func (e *Engine) Uint64() uint64 {
	return e.src.Uint64()
}

// Seed resets the engine to the deterministic state derived from seed.
func (e *Engine) Seed(seed uint64) {
	e.src.Seed(seed)
}

// Discard advances the engine by n raw draws, dropping the values.
func (e *Engine) Discard(n int) {
	for i := 0; i < n; i++ {
		e.src.Uint64()
	}
}

// Clone returns an independent engine starting from this engine's current
// state. Draws on the clone do not affect the original.
func (e *Engine) Clone() *Engine {
	return &Engine{src: e.src}
}

// Snapshot captures the engine's current internal state. The returned
// snapshot stays valid for the life of the process and can restore any
// engine, not just this one.
func (e *Engine) Snapshot() *Snapshot {
	state, err := e.src.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("random: engine state marshal failed: %v", err))
	}
	return &Snapshot{state: state}
}

// Restore rewinds the engine to a previously captured snapshot. A snapshot
// that cannot be decoded means the serialize/restore contract was broken,
// which is a programming error.
func (e *Engine) Restore(snap *Snapshot) {
	if err := e.src.UnmarshalBinary(snap.state); err != nil {
		panic(fmt.Sprintf("random: engine state restore failed: %v", err))
	}
}

// Snapshot is an opaque, restorable copy of an Engine's internal state at a
// point in time. Copies of one logical generator stream share a single
// Snapshot by pointer so they all rewind to the same recorded starting
// point; duplicating it per copy would desynchronize them.
type Snapshot struct {
	state []byte
}
