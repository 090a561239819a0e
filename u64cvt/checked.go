package u64cvt

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange reports a truncating conversion whose input is NaN,
// negative, or at least 2^64.
var ErrOutOfRange = errors.New("u64cvt: input outside [0, 2^64)")

// FloatToUnsigned64Checked is FloatToUnsigned64 with the recommended
// default strategy and a domain check: inputs that the unchecked function
// leaves unspecified are reported as an error wrapping ErrOutOfRange.
func FloatToUnsigned64Checked(x float32) (uint64, error) {
	// The comparison is written to fail for NaN as well.
	if !(x >= 0 && x < f32_b64) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, x)
	}
	return FloatToUnsigned64(x, SelectBranchy, ConstRegister), nil
}

// DoubleToUnsigned64Checked is DoubleToUnsigned64 with the recommended
// default strategy and a domain check: inputs that the unchecked function
// leaves unspecified are reported as an error wrapping ErrOutOfRange.
func DoubleToUnsigned64Checked(x float64) (uint64, error) {
	if !(x >= 0 && x < f64_b64) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, x)
	}
	return DoubleToUnsigned64(x, SelectBranchy, ConstRegister), nil
}

// FloatToUnsigned64Sat is FloatToUnsigned64 with the recommended default
// strategy and saturation instead of an unspecified result: NaN and
// negative inputs clamp to 0, inputs at or above 2^64 clamp to 2^64-1.
func FloatToUnsigned64Sat(x float32) uint64 {
	if !(x >= 0) {
		return 0
	}
	if x >= f32_b64 {
		return math.MaxUint64
	}
	return FloatToUnsigned64(x, SelectBranchy, ConstRegister)
}

// DoubleToUnsigned64Sat is DoubleToUnsigned64 with the recommended default
// strategy and saturation instead of an unspecified result: NaN and
// negative inputs clamp to 0, inputs at or above 2^64 clamp to 2^64-1.
func DoubleToUnsigned64Sat(x float64) uint64 {
	if !(x >= 0) {
		return 0
	}
	if x >= f64_b64 {
		return math.MaxUint64
	}
	return DoubleToUnsigned64(x, SelectBranchy, ConstRegister)
}
