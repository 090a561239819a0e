package u64cvt

import (
	"math"
)

// FloatToUnsigned64 returns x truncated toward zero as a 64-bit unsigned
// integer. The input MUST be finite and in [0, 2^64); for any other input
// the result is unspecified (see FloatToUnsigned64Checked and
// FloatToUnsigned64Sat for defined-behavior wrappers).
func FloatToUnsigned64(x float32, sel Select, cs ConstSource) uint64 {
	bias := f32_b63
	if cs == ConstMemory {
		bias = const_tab.f32_b63
	}
	if sel == SelectBranchless {
		return f32_to_u64_branchless(x, bias)
	}
	return f32_to_u64_branchy(x, bias)
}

// DoubleToUnsigned64 returns x truncated toward zero as a 64-bit unsigned
// integer. The input MUST be finite and in [0, 2^64); for any other input
// the result is unspecified (see DoubleToUnsigned64Checked and
// DoubleToUnsigned64Sat for defined-behavior wrappers).
func DoubleToUnsigned64(x float64, sel Select, cs ConstSource) uint64 {
	bias := f64_b63
	if cs == ConstMemory {
		bias = const_tab.f64_b63
	}
	if sel == SelectBranchless {
		return f64_to_u64_branchless(x, bias)
	}
	return f64_to_u64_branchy(x, bias)
}

// Truncating conversion with an explicit branch on the 2^63 boundary.
// For x < 2^63 the native signed conversion is already correct. Otherwise
// x - 2^63 is exact (every binary32 value in [2^63, 2^64) is a multiple of
// 2^40, and so is the difference), the native conversion truncates the
// unbiased value, and the top bit is restored with an integer OR. The OR,
// never a floating-point addition of 2^63 or 2^64: adding a huge power of
// two to a tie-breaking mantissa can round away the low result bits.
func f32_to_u64_branchy(x float32, bias float32) uint64 {
	if x < bias {
		return uint64(int64(x))
	}
	return uint64(int64(x-bias)) | b63
}

// Branch-free version: both candidates are computed unconditionally, then
// one is selected by a mask derived from the sign bit of x - 2^63. The
// discarded candidate went through an out-of-range conversion and may hold
// an unspecified value; the mask never depends on it.
func f32_to_u64_branchless(x float32, bias float32) uint64 {
	d := x - bias
	lo := uint64(int64(x))
	hi := uint64(int64(d)) | b63
	// All-ones when d < 0, i.e. when x was below 2^63. x = 2^63 gives
	// d = +0 with a clear sign bit, which correctly selects hi.
	m := uint64(int64(int32(math.Float32bits(d)) >> 31))
	return (lo & m) | (hi &^ m)
}

// Same shape as f32_to_u64_branchy; in [2^63, 2^64) every binary64 value
// is a multiple of 2^11, so the bias subtraction is again exact.
func f64_to_u64_branchy(x float64, bias float64) uint64 {
	if x < bias {
		return uint64(int64(x))
	}
	return uint64(int64(x-bias)) | b63
}

func f64_to_u64_branchless(x float64, bias float64) uint64 {
	d := x - bias
	lo := uint64(int64(x))
	hi := uint64(int64(d)) | b63
	m := uint64(int64(math.Float64bits(d)) >> 63)
	return (lo & m) | (hi &^ m)
}
