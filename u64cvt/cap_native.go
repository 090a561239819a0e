//go:build arm64 || riscv64

package u64cvt

func init() {
	// Scalar unsigned conversion opcodes are part of the base ISA here
	// (UCVTF/FCVTZU on arm64, fcvt.d.lu/fcvt.lu.d on riscv64).
	has_native_unsigned = true
}
