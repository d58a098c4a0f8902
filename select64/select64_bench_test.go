package select64_test

import (
	"math/bits"
	"testing"

	"github.com/lanrat/fastperm/internal/permtest"
	"github.com/lanrat/fastperm/select64"
)

var (
	sink8  uint8
	sink32 uint32
)

type selectInput struct {
	idx  uint8
	mask uint64
}

func selectInputs() []selectInput {
	rng := permtest.Seeded(permtest.Seed)
	in := make([]selectInput, 1024)
	for i := range in {
		mask := rng.Uint64() | 1<<63
		in[i] = selectInput{idx: uint8(rng.Intn(bits.OnesCount64(mask))), mask: mask}
	}
	return in
}

func benchmarkSelect(b *testing.B, fn func(uint8, uint64) uint8) {
	in := selectInputs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := in[i&(len(in)-1)]
		sink8 = fn(x.idx, x.mask)
	}
}

func BenchmarkSelect(b *testing.B)          { benchmarkSelect(b, select64.Select) }
func BenchmarkSelectViaPdep32(b *testing.B) { benchmarkSelect(b, select64.SelectViaPdep32) }
func BenchmarkSelectFallback(b *testing.B)  { benchmarkSelect(b, select64.SelectFallback) }

func benchmarkPdep32(b *testing.B, fn func(uint32, uint32) uint32) {
	rng := permtest.Seeded(permtest.Seed)
	src := make([]uint32, 1024)
	mask := make([]uint32, 1024)
	for i := range src {
		src[i], mask[i] = rng.Uint32(), rng.Uint32()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i & 1023
		sink32 = fn(src[j], mask[j])
	}
}

func BenchmarkPdep32(b *testing.B)         { benchmarkPdep32(b, select64.Pdep32) }
func BenchmarkPdep32Fallback(b *testing.B) { benchmarkPdep32(b, select64.Pdep32Fallback) }
