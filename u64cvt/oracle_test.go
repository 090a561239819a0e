package u64cvt

import (
	"math/big"
)

// Arbitrary-precision ground truth for the four conversions. The
// integer-to-float direction runs through a big.Float pinned to the exact
// destination precision with the roundTiesToEven policy; the truncating
// direction runs through a big.Int. Any rounding discrepancy in the
// routines under test therefore shows up as a bit difference.

func oracle_u64_to_f64(x uint64) float64 {
	f := new(big.Float).SetPrec(53).SetMode(big.ToNearestEven).SetUint64(x)
	r, _ := f.Float64()
	return r
}

func oracle_u64_to_f32(x uint64) float32 {
	f := new(big.Float).SetPrec(24).SetMode(big.ToNearestEven).SetUint64(x)
	r, _ := f.Float32()
	return r
}

// Input must be in [0, 2^64); this matches the contract of the functions
// being validated.
func oracle_f64_to_u64(x float64) uint64 {
	z, _ := new(big.Float).SetFloat64(x).Int(nil)
	return z.Uint64()
}

func oracle_f32_to_u64(x float32) uint64 {
	z, _ := new(big.Float).SetFloat64(float64(x)).Int(nil)
	return z.Uint64()
}
