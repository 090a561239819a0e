//go:build amd64

package u64cvt

import "golang.org/x/sys/cpu"

func init() {
	// VCVTUSI2SS/SD and VCVTTSS/SD2USI arrive with AVX-512F.
	has_native_unsigned = cpu.X86.HasAVX512F
}
