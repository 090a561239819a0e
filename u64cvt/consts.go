package u64cvt

import (
	"math"
)

// Some useful constants:
//   b63          2^63 as an integer bit mask
//   fNN_bKK      2^KK as a binaryNN value (exact, power of two)
//   fNN_bKK_bits the encoding of that value

const b63 = uint64(0x8000000000000000)

const f32_b63 = float32(9223372036854775808.0)
const f32_b64 = float32(18446744073709551616.0)

const f64_b63 = 9223372036854775808.0
const f64_b64 = 18446744073709551616.0

const f32_b63_bits = uint32(0x5F000000)
const f64_b63_bits = uint64(0x43E0000000000000)

// Magic biases for the split conversion in Unsigned64ToDouble. Installing
// a 32-bit half of the source integer into the low mantissa bits of these
// patterns yields half + 2^52 (low pattern) and half*2^32 + 2^84 (high
// pattern), both exactly: the halves fit losslessly within the mantissa
// precision available at those exponents.
const f64_b52 = 4503599627370496.0
const f64_b84 = 19342813113834066795298816.0

const f64_b52_bits = uint64(0x4330000000000000)
const f64_b84_bits = uint64(0x4530000000000000)

// Bias constants for the memory-variant strategies. Read-only after
// initialization: keeping them in a package variable forces the compiler
// to fetch them from the data section, whereas the register variants use
// the constants above, which get synthesized as immediates.
var const_tab = struct {
	f32_b63 float32
	f64_b63 float64
	f64_b52 float64
	f64_b84 float64
}{
	f32_b63: math.Float32frombits(f32_b63_bits),
	f64_b63: math.Float64frombits(f64_b63_bits),
	f64_b52: math.Float64frombits(f64_b52_bits),
	f64_b84: math.Float64frombits(f64_b84_bits),
}
