//go:build !amd64 && !arm64 && !riscv64

package u64cvt

func init() {
	has_native_unsigned = false
}
