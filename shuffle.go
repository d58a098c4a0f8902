package fastperm

// Shuffle emits a Fisher-Yates shuffled slice of indices, reshuffling the
// whole slice every n draws.
type Shuffle struct {
	src  Source
	idxs []uint8
	idx  uint8
}

// NewShuffle returns a Shuffle over [0, n) drawing from src.
// It panics if n is 0 or greater than MaxPeriod.
func NewShuffle(src Source, n uint8) *Shuffle {
	checkPeriod(n)
	idxs := make([]uint8, n)
	copy(idxs, identity[:n])
	// idx == n makes the first draw shuffle
	return &Shuffle{src: src, idxs: idxs, idx: n}
}

// Period returns n.
func (s *Shuffle) Period() uint8 {
	return uint8(len(s.idxs))
}

// NextIndex returns the next index of the current cycle.
func (s *Shuffle) NextIndex() uint8 {
	if s.idx == s.Period() {
		s.Reset()
	}
	r := s.idxs[s.idx]
	s.idx++
	return r
}

// Reset reshuffles all n indices.
func (s *Shuffle) Reset() {
	s.idx = 0
	s.src.Shuffle(len(s.idxs), s.swap)
}

func (s *Shuffle) swap(i, j int) {
	s.idxs[i], s.idxs[j] = s.idxs[j], s.idxs[i]
}

// ShuffleArray is Shuffle backed by a fixed size array, so constructing one
// allocates nothing beyond the struct itself.
type ShuffleArray struct {
	src  Source
	idxs [MaxPeriod]uint8
	n    uint8
	idx  uint8
}

// NewShuffleArray returns a ShuffleArray over [0, n) drawing from src.
// It panics if n is 0 or greater than MaxPeriod.
func NewShuffleArray(src Source, n uint8) *ShuffleArray {
	checkPeriod(n)
	return &ShuffleArray{src: src, idxs: identity, n: n, idx: n}
}

// Period returns n.
func (s *ShuffleArray) Period() uint8 {
	return s.n
}

// NextIndex returns the next index of the current cycle.
func (s *ShuffleArray) NextIndex() uint8 {
	if s.idx == s.n {
		s.Reset()
	}
	r := s.idxs[s.idx]
	s.idx++
	return r
}

// Reset reshuffles the first n slots.
func (s *ShuffleArray) Reset() {
	s.idx = 0
	s.src.Shuffle(int(s.n), s.swap)
}

func (s *ShuffleArray) swap(i, j int) {
	s.idxs[i], s.idxs[j] = s.idxs[j], s.idxs[i]
}
