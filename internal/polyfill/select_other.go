//go:build !amd64 && !arm64

package polyfill

// Select falls back to the portable scalar backend on architectures with no
// dedicated SIMD backend in this package; the scalar backend always
// applies, so there is no unsupported-CPU case to raise.
func Select() Mover {
	return Scalar
}
