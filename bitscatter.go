package fastperm

import "github.com/lanrat/fastperm/select64"

// BitScatter samples indices without replacement from a bit mask of the
// indices not yet chosen in the current cycle. The whole state is one word
// and a counter; no index data is ever moved.
type BitScatter struct {
	src Source
	// unchosen has a bit set for every index not yet drawn this cycle
	unchosen uint64
	n        uint8
	// m is the number of remaining draws, always the popcount of unchosen
	m uint8
}

// NewBitScatter returns a BitScatter over [0, n) drawing from src.
// It panics if n is 0 or greater than MaxPeriod.
func NewBitScatter(src Source, n uint8) *BitScatter {
	checkPeriod(n)
	return &BitScatter{src: src, unchosen: indexMask(n), n: n, m: n}
}

// Period returns n.
func (b *BitScatter) Period() uint8 {
	return b.n
}

// Reset marks all n indices as unchosen.
func (b *BitScatter) Reset() {
	b.m = b.n
	b.unchosen = indexMask(b.n)
}

// NextIndex picks one of the m unchosen indices uniformly and clears it.
func (b *BitScatter) NextIndex() uint8 {
	if b.m == 0 {
		b.Reset()
	}

	// rank of the pick among the remaining indices, in [0, m)
	rank := uint8(fastmap32(b.src.Uint32(), uint32(b.m)))
	// position of that set bit in [0, n)
	idx := select64.Select(rank, b.unchosen)
	b.unchosen &^= 1 << idx
	b.m--

	return idx
}
