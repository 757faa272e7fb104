//go:build amd64

package polyfill

import "golang.org/x/sys/cpu"

// Select picks the best Mover available on this host: AVX-512 -> AVX2 ->
// scalar. Probing cpu.X86 costs nothing beyond the package-level feature
// detection golang.org/x/sys/cpu already performs in its own init, so
// there is no need to cache the result beyond that — these are idempotent
// reads of architectural registers.
func Select() Mover {
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		return AVX512
	}
	if cpu.X86.HasAVX2 {
		return AVX2
	}
	return Scalar
}
