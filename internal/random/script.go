// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package random

// Script is a Source that replays fixed values. IntN returns the next scripted
// value modulo n (zero once exhausted) and Shuffle leaves the order unchanged
// unless Swaps is set. It exists for tests in this and dependent packages.
type Script struct {
	Ints []int

	// Swaps, when non-nil, is applied by Shuffle as a list of index pairs.
	Swaps [][2]int

	pos int
}

// IntN returns the next scripted value reduced into [0, n).
func (s *Script) IntN(n int) int {
	if s.pos >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.pos] % n
	s.pos++
	return v
}

// Shuffle applies the scripted swaps.
func (s *Script) Shuffle(n int, swap func(i, j int)) {
	for _, p := range s.Swaps {
		if p[0] < n && p[1] < n {
			swap(p[0], p[1])
		}
	}
}
