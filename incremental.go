package fastperm

// ShuffleArrayIncremental runs an inside-out Fisher-Yates shuffle lazily:
// each draw performs one swap, so there is no O(n) reshuffle every cycle.
//
// The array always holds some permutation of [0, n). A new cycle simply
// starts swapping from the front again, reshuffling the previous cycle's
// order as it goes.
type ShuffleArrayIncremental struct {
	src  Source
	idxs [MaxPeriod]uint8
	n    uint8
	idx  uint8
}

// NewShuffleArrayIncremental returns a ShuffleArrayIncremental over [0, n)
// drawing from src. It panics if n is 0 or greater than MaxPeriod.
func NewShuffleArrayIncremental(src Source, n uint8) *ShuffleArrayIncremental {
	checkPeriod(n)
	return &ShuffleArrayIncremental{src: src, idxs: identity, n: n}
}

// Period returns n.
func (s *ShuffleArrayIncremental) Period() uint8 {
	return s.n
}

// Reset rewinds to the start of a cycle. The array is not reinitialized.
func (s *ShuffleArrayIncremental) Reset() {
	s.idx = 0
}

// NextIndex swaps a uniformly chosen remaining index into the current
// position and returns it.
func (s *ShuffleArrayIncremental) NextIndex() uint8 {
	// modulo bias is tolerated for periods this small
	j := uint8(fastmap32(s.src.Uint32(), uint32(s.n-s.idx))) + s.idx
	s.idxs[s.idx], s.idxs[j] = s.idxs[j], s.idxs[s.idx]

	r := s.idxs[s.idx]
	if s.idx++; s.idx == s.n {
		s.idx = 0
	}
	return r
}
