// This package implements bit-exact conversions between 64-bit unsigned
// integers and IEEE-754 binary32/binary64 floating-point values, for
// processors that have no hardware instruction for the unsigned 64-bit
// case (i.e. all mainstream x86-64 processors without the AVX-512 tier).
//
// Hardware (and the Go toolchain on top of it) offers fast, correct
// conversions for *signed* 64-bit integers only. The routines here rebuild
// the missing high-order bit through auxiliary arithmetic while preserving
// exact IEEE rounding: round-to-nearest-even for the integer-to-float
// direction, truncation toward zero for the float-to-integer direction.
// "Close" is never an accepted outcome; every result is identical to what
// an arbitrary-precision conversion followed by correct rounding would
// produce.
//
// Four operations form the surface:
//
//	FloatToUnsigned64     binary32 -> uint64, truncating
//	DoubleToUnsigned64    binary64 -> uint64, truncating
//	Unsigned64ToFloat     uint64 -> binary32, round-to-nearest-even
//	Unsigned64ToDouble    uint64 -> binary64, round-to-nearest-even
//
// Each operation accepts one or two strategy selectors ([Select],
// [ConstSource]) choosing among code shapes that trade latency, code size
// and branch predictability against each other. Strategy choice never
// affects the result, only performance; all variants of one operation are
// bit-identical for every input, which also makes them pinnable for
// reproducible benchmarking. The zero values are the recommended defaults
// for a caller with no information about its input distribution.
//
// The truncating direction has a contract: the input must be finite and in
// [0, 2^64). Outside that domain the unchecked functions return an
// unspecified value (they never trap); this mirrors the corresponding
// language-standard undefined behavior and keeps the hot path free of
// range checks. Callers that need a defined behavior instead use the
// Checked variants (which report an error) or the Sat variants (which
// clamp). The integer-to-float direction is total: every uint64 has a
// well-defined correctly rounded representation.
//
// All functions are pure and touch no shared mutable state; any number of
// goroutines may call any of them concurrently without synchronization.
// The only shared data is a read-only constant table used by the
// memory-variant strategies, initialized before first use and never
// written afterwards.
//
// [HasNativeUnsignedConversions] reports whether the processor converts
// unsigned 64-bit values natively, in which case a caller may bypass this
// package in favor of plain Go conversions; the routines here remain
// correct either way.
package u64cvt
