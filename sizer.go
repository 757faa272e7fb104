package upack

import "github.com/lnx-search/upack-go/internal/kernel"

// CompressedSize returns ceil(n*b/8), the number of packed bytes a block of
// n elements occupies at bit width b.
func CompressedSize(b, n int) int {
	return kernel.CompressedSize(b, n)
}

// MaxCompressedSizeX64 returns ceil(64*b/8), the fixed byte count a full
// 64-element sub-block occupies at bit width b.
func MaxCompressedSizeX64(b int) int {
	return kernel.MaxCompressedSize(b, kernel.HalfBlockSize)
}

// MaxCompressedSizeX128 returns ceil(128*b/8), the fixed byte count a full
// 128-element block occupies at bit width b.
func MaxCompressedSizeX128(b int) int {
	return kernel.MaxCompressedSize(b, kernel.BlockSize)
}

// X128MaxOutputLen returns the fixed upper bound on bytes a 128-element
// block of E can ever produce in the base modes: callers sizing an output
// buffer once, rather than per call, should use this.
func X128MaxOutputLen[E Elem]() int {
	return kernel.BlockSize * elemBytes[E]()
}

// X128MaxOutputLenAdaptive is X128MaxOutputLen plus the adaptive-delta
// minimum-delta prefix (sizeof(E) bytes).
func X128MaxOutputLenAdaptive[E Elem]() int {
	return X128MaxOutputLen[E]() + elemBytes[E]()
}
