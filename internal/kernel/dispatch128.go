package kernel

import "github.com/lnx-search/upack-go/internal/polyfill"

// BlockSize is the maximum number of elements in one block.
const BlockSize = 128

// HalfBlockSize is the sub-block granularity the 64-element kernels operate
// on.
const HalfBlockSize = 64

// Pack128 splits n <= 128 elements into a left half [0,64) and a right half
// [64,128), and packs each half at the chosen bit width, placing the right
// half unconditionally at byte offset MaxCompressedSize(b, 64) so the two
// halves' byte streams never overlap regardless of n. Returns bytes written
// (== CompressedSize(b, n)).
func Pack128(out []byte, vals []uint64, b, w, n int, mv polyfill.Mover) int {
	leftCount := min(n, HalfBlockSize)
	written := PackWidth(out, vals[:leftCount], b, w, leftCount, mv)
	rightCount := max(0, n-HalfBlockSize)
	if rightCount == 0 {
		return written
	}
	offset := MaxCompressedSize(b, HalfBlockSize)
	PackWidth(out[offset:], vals[HalfBlockSize:HalfBlockSize+rightCount], b, w, rightCount, mv)
	return offset + CompressedSize(b, rightCount)
}

// Unpack128 is the inverse of Pack128. vals must have length >= 128; lanes
// beyond n are zero-filled — the right half is zero-initialized when
// n <= 64, and the same holds for lanes [n, 64) within a partial left half,
// which PackWidth/UnpackWidth's recursion never touches. Returns bytes read
// (== CompressedSize(b, n)).
func Unpack128(vals []uint64, in []byte, b, w, n int, mv polyfill.Mover) int {
	for i := range vals[:BlockSize] {
		vals[i] = 0
	}
	leftCount := min(n, HalfBlockSize)
	read := UnpackWidth(vals[:leftCount], in, b, w, leftCount, mv)
	rightCount := max(0, n-HalfBlockSize)
	if rightCount == 0 {
		return read
	}
	offset := MaxCompressedSize(b, HalfBlockSize)
	UnpackWidth(vals[HalfBlockSize:HalfBlockSize+rightCount], in[offset:], b, w, rightCount, mv)
	return offset + CompressedSize(b, rightCount)
}
