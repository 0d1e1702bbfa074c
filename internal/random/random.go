// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package random provides the randomness every heuristic choice in the
// pipeline draws from. Callers inject a Source so tests can fix or script
// the sequence.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source is the subset of *rand.Rand the pipeline uses.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a PCG-backed generator. A zero seed draws one from the runtime
// generator, so successive processes see different sequences.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Locked wraps src so it can be shared across goroutines.
func Locked(src Source) Source {
	return &locked{src: src}
}

type locked struct {
	mu  sync.Mutex
	src Source
}

func (l *locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.src.Shuffle(n, swap)
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Sample2 returns two distinct indices in [0, n), chosen uniformly without
// replacement. n must be at least 2.
func Sample2(src Source, n int) (int, int) {
	i := src.IntN(n)
	j := src.IntN(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
