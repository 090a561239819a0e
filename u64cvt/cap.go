package u64cvt

// Set once by the per-architecture probe at init; read-only afterwards.
var has_native_unsigned bool

// HasNativeUnsignedConversions reports whether the processor (through the
// Go toolchain) converts between uint64 and float32/float64 with a single
// hardware instruction: AVX-512F on x86-64, always on arm64 and riscv64.
// The probe runs once at package initialization, never per call. When it
// returns true, hot-path callers may prefer plain Go conversions over this
// package; the routines here stay correct either way.
func HasNativeUnsignedConversions() bool {
	return has_native_unsigned
}
