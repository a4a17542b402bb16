package unthbuf

import (
	"math/rand"
	"time"
)

const benchmarkParallelism = 4

// primes holds one prime per magnitude, used to sweep every element width.
var primes = []uint64{2, 5, 13, 29, 61, 113, 251, 509, 1021, 2039, 4093, 8179,
	16381, 32749, 65521, 131063, 262139, 524269, 1048573, 2097143, 4194301,
	8388593, 16777213, 33554393, 67108859, 134217689, 268435399, 536870909,
	1073741789, 2147483629, 4294967291, 8589934583, 17179869143, 34359738337,
	68719476731, 137438953447, 274877906899, 549755813881, 1099511627689,
	2199023255531, 4398046511093, 8796093022151, 17592186044399,
	35184372088777, 70368744177643, 140737488355213, 281474976710597,
	562949953421231, 1125899906842597, 2251799813685119, 4503599627370449,
	9007199254740881, 18014398509481951, 36028797018963913, 72057594037927931,
	144115188075855859, 288230376151711717, 576460752303423433,
	1152921504606846883, 2305843009213693921, 4611686018427387847,
	9223372036854775783, 18446744073709551557}

// randomValues generates n random values that fit under the given mask.
func randomValues(n int, mask uint64) []uint64 {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	values := make([]uint64, n)
	for i := range values {
		values[i] = r.Uint64() & mask
	}
	return values
}

// layoutsUnderTest lists both layouts for table-driven tests.
var layoutsUnderTest = []CellLayout{Aligned, Packed}
