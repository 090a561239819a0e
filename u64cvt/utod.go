package u64cvt

import (
	"math"
)

// Unsigned64ToDouble returns the correctly rounded binary64 value of x,
// with the roundTiesToEven policy. Total: every uint64 input has a
// well-defined result. The algorithm is inherently branch-free, so only
// the constant-source axis is exposed.
func Unsigned64ToDouble(x uint64, cs ConstSource) float64 {
	if cs == ConstMemory {
		return u64_to_f64_split(x, const_tab.f64_b52, const_tab.f64_b84)
	}
	return u64_to_f64_split(x, f64_b52, f64_b84)
}

// The 64-bit integer is split into 32-bit halves, each installed into the
// mantissa field of a pre-biased magic pattern: reinterpreted as binary64
// these read lo + 2^52 and hi*2^32 + 2^84, both exactly. Subtracting the
// known biases is exact as well (same exponent class, no rounding), which
// leaves two exact doubles whose hardware sum is the single correctly
// rounded step of the whole conversion. The full 64-bit magnitude never
// goes through a narrower signed conversion, so none of the
// reconstruction hazards of that path apply.
func u64_to_f64_split(x uint64, b52 float64, b84 float64) float64 {
	lo := math.Float64frombits(f64_b52_bits | (x & 0xFFFFFFFF))
	hi := math.Float64frombits(f64_b84_bits | (x >> 32))
	return (hi - b84) + (lo - b52)
}
