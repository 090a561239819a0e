package u64cvt

import (
	"math"
)

// Unsigned64ToFloat returns the correctly rounded binary32 value of x,
// with the roundTiesToEven policy. Total: every uint64 input has a
// well-defined result.
func Unsigned64ToFloat(x uint64, sel Select) float32 {
	if sel == SelectBranchless {
		return u64_to_f32_branchless(x)
	}
	return u64_to_f32_branchy(x)
}

// When the top bit is clear, x is numerically identical as a signed value
// and the native conversion already rounds correctly. Otherwise x is
// halved with the dropped bit folded back in as a sticky bit (exact with
// respect to the final rounding: the sticky bit preserves the tie
// information the shift would lose), the 63-bit half is converted through
// the native signed path, which performs the single rounding step, and the
// result is doubled. Doubling a binary32 value below 2^63 is exact, so no
// second rounding occurs.
func u64_to_f32_branchy(x uint64) float32 {
	if int64(x) >= 0 {
		return float32(int64(x))
	}
	h := (x >> 1) | (x & 1)
	r := float32(int64(h))
	return r + r
}

// Branch-free version: both paths are computed unconditionally and the
// result is selected on the sign bit. The direct candidate holds a wrong
// (negative) value when the top bit is set; it is masked out.
func u64_to_f32_branchless(x uint64) float32 {
	h := (x >> 1) | (x & 1)
	r := float32(int64(h))
	r += r
	n := float32(int64(x))
	m := uint32(int64(x) >> 63)
	return math.Float32frombits(
		(math.Float32bits(n) &^ m) | (math.Float32bits(r) & m))
}
