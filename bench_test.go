// Access benchmarks for both layouts, plus 1-bit access compared against
// third-party bit structures:
// 1. Buf (Aligned / Packed) - location arithmetic + mask/shift
// 2. bits-and-blooms/bitset - plain bitset
// 3. hillbig/rsdic          - rank/select dictionary

package unthbuf

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/hillbig/rsdic"
)

const benchmarkLen = 4096

func benchmarkGet(b *testing.B, layout CellLayout, width uint) {
	bits := MustBits(width)
	buf := New(layout, bits, benchmarkLen)
	for index, value := range randomValues(benchmarkLen, buf.Mask()) {
		buf.SetUnchecked(index, value)
	}

	b.SetParallelism(benchmarkParallelism)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			_ = buf.GetUnchecked(counter % benchmarkLen)
			counter++
		}
	})
}

func benchmarkSet(b *testing.B, layout CellLayout, width uint) {
	bits := MustBits(width)
	buf := New(layout, bits, benchmarkLen)
	values := randomValues(benchmarkLen, buf.Mask())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index := i % benchmarkLen
		buf.SetUnchecked(index, values[index])
	}
}

func BenchmarkGet_Aligned5(b *testing.B)  { benchmarkGet(b, Aligned, 5) }
func BenchmarkGet_Packed5(b *testing.B)   { benchmarkGet(b, Packed, 5) }
func BenchmarkGet_Aligned37(b *testing.B) { benchmarkGet(b, Aligned, 37) }
func BenchmarkGet_Packed37(b *testing.B)  { benchmarkGet(b, Packed, 37) }

func BenchmarkSet_Aligned5(b *testing.B)  { benchmarkSet(b, Aligned, 5) }
func BenchmarkSet_Packed5(b *testing.B)   { benchmarkSet(b, Packed, 5) }
func BenchmarkSet_Aligned37(b *testing.B) { benchmarkSet(b, Aligned, 37) }
func BenchmarkSet_Packed37(b *testing.B)  { benchmarkSet(b, Packed, 37) }

// --- 1-bit access comparisons ---

func BenchmarkBitAccess_UnthBuf(b *testing.B) {
	buf := New(Aligned, MustBits(1), benchmarkLen)
	for index, value := range randomValues(benchmarkLen, 1) {
		buf.SetUnchecked(index, value)
	}

	b.SetParallelism(benchmarkParallelism)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			_ = buf.GetUnchecked(counter % benchmarkLen)
			counter++
		}
	})
}

func BenchmarkBitAccess_Bitset(b *testing.B) {
	bs := bitset.New(benchmarkLen)
	for index, value := range randomValues(benchmarkLen, 1) {
		bs.SetTo(uint(index), value == 1)
	}

	b.SetParallelism(benchmarkParallelism)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			_ = bs.Test(uint(counter % benchmarkLen))
			counter++
		}
	})
}

func BenchmarkBitAccess_Rsdic(b *testing.B) {
	rs := rsdic.New()
	for _, value := range randomValues(benchmarkLen, 1) {
		rs.PushBack(value == 1)
	}

	b.SetParallelism(benchmarkParallelism)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			_ = rs.Bit(uint64(counter % benchmarkLen))
			counter++
		}
	})
}
