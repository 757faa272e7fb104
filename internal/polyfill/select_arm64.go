//go:build arm64

package polyfill

import "golang.org/x/sys/cpu"

// Select picks NEON when available, falling back to scalar. NEON is
// baseline on arm64, so HasASIMD is true in practice, but a live probe is
// used rather than assuming it.
func Select() Mover {
	if cpu.ARM64.HasASIMD {
		return NEON
	}
	return Scalar
}
