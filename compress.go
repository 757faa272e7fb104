package upack

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/lnx-search/upack-go/internal/kernel"
	"github.com/lnx-search/upack-go/internal/polyfill"
)

// Elem is the set of element types upack operates on. The same generic
// facade backs both widths by staging values through a shared uint64-based
// kernel core (internal/kernel); only the lane width threaded through that
// core differs.
type Elem interface {
	~uint16 | ~uint32
}

func elemBits[E Elem]() int {
	var zero E
	switch any(zero).(type) {
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		panic("upack: unsupported element type")
	}
}

func elemBytes[E Elem]() int {
	return elemBits[E]() / 8
}

// validateLength panics if n is not a legal block length. FastPFOR-style
// codecs always operate on fixed chunks of at most 128 elements; there is
// no partial recovery here, same as the rest of the facade's preconditions.
func validateLength(n int) {
	if n < 0 {
		panic(fmt.Sprintf("upack: invalid block length %d (cannot be negative)", n))
	}
	if n > kernel.BlockSize {
		panic(fmt.Sprintf("upack: block length %d exceeds maximum %d", n, kernel.BlockSize))
	}
}

func validateBitWidth(b, w int) {
	if b < 0 || b > w {
		panic(fmt.Sprintf("upack: bit width %d exceeds element width %d", b, w))
	}
}

func requireLen(buf []byte, need int, who string) {
	if len(buf) < need {
		panic(fmt.Sprintf("upack: %s buffer too small (need %d bytes, got %d)", who, need, len(buf)))
	}
}

func stage[E Elem](vals []uint64, block []E, n int) {
	for i := 0; i < n; i++ {
		vals[i] = uint64(block[i])
	}
	for i := n; i < kernel.BlockSize; i++ {
		vals[i] = 0
	}
}

func unstage[E Elem](block []E, vals []uint64, n int) {
	for i := 0; i < n; i++ {
		block[i] = E(vals[i])
	}
}

func bitWidthOf(vals []uint64, n int) int {
	var width int
	for i := 0; i < n; i++ {
		if w := bits.Len64(vals[i]); w > width {
			width = w
		}
	}
	return width
}

func putElemLE[E Elem](dst []byte, v uint64) {
	if elemBits[E]() == 16 {
		binary.LittleEndian.PutUint16(dst, uint16(v))
		return
	}
	binary.LittleEndian.PutUint32(dst, uint32(v))
}

func getElemLE[E Elem](src []byte) uint64 {
	if elemBits[E]() == 16 {
		return uint64(binary.LittleEndian.Uint16(src))
	}
	return uint64(binary.LittleEndian.Uint32(src))
}

// Compress scans block[0:n] for the minimal bit width that represents
// every value, packs at that width into out using the best available SIMD
// backend, and reports the details the caller must persist to call
// Decompress later. out must be at least X128MaxOutputLen[E]() bytes.
func Compress[E Elem](out []byte, block []E, n int) CompressionDetails {
	validateLength(n)
	w := elemBits[E]()
	requireLen(out, X128MaxOutputLen[E](), "Compress")

	var vals [kernel.BlockSize]uint64
	stage(vals[:], block, n)
	b := bitWidthOf(vals[:], n)
	written := kernel.Pack128(out, vals[:], b, w, n, polyfill.Select())
	return CompressionDetails{CompressedBitLength: b, BytesWritten: written}
}

// Decompress reverses Compress given the bit width b it reported. It
// returns the number of bytes read from in. Lanes [n, 128) of out are left
// untouched.
func Decompress[E Elem](out []E, in []byte, n, b int) int {
	validateLength(n)
	w := elemBits[E]()
	validateBitWidth(b, w)
	requireLen(in, kernel.CompressedSize(b, n), "Decompress")

	var vals [kernel.BlockSize]uint64
	read := kernel.Unpack128(vals[:], in, b, w, n, polyfill.Select())
	unstage(out, vals[:], n)
	return read
}

// CompressDelta delta-encodes block[0:n] in place (block[i] -= block[i-1],
// block[0] -= last) before packing. The precondition block[i] >= block[i-1]
// (and last <= block[0]) is not checked: violating it is undefined
// behavior per the package's error-handling policy, not a recoverable
// error.
func CompressDelta[E Elem](out []byte, block []E, n int, last E) CompressionDetails {
	validateLength(n)
	w := elemBits[E]()
	requireLen(out, X128MaxOutputLen[E](), "CompressDelta")

	var vals [kernel.BlockSize]uint64
	stage(vals[:], block, n)
	kernel.DeltaEncode(vals[:], n, uint64(last), w)
	unstage(block, vals[:], n)

	b := bitWidthOf(vals[:], n)
	written := kernel.Pack128(out, vals[:], b, w, n, polyfill.Select())
	return CompressionDetails{CompressedBitLength: b, BytesWritten: written}
}

// DecompressDelta reverses CompressDelta, accumulating a running prefix sum
// seeded with last.
func DecompressDelta[E Elem](out []E, in []byte, n, b int, last E) int {
	validateLength(n)
	w := elemBits[E]()
	validateBitWidth(b, w)
	requireLen(in, kernel.CompressedSize(b, n), "DecompressDelta")

	var vals [kernel.BlockSize]uint64
	read := kernel.Unpack128(vals[:], in, b, w, n, polyfill.Select())
	var outVals [kernel.BlockSize]uint64
	kernel.DeltaDecode(outVals[:n], vals[:n], n, uint64(last), w)
	unstage(out, outVals[:], n)
	return read
}

// CompressDelta1 is CompressDelta with an additional -1 applied to every
// difference, the exact encoding for strictly-increasing sequences
// (block[i] > block[i-1]).
func CompressDelta1[E Elem](out []byte, block []E, n int, last E) CompressionDetails {
	validateLength(n)
	w := elemBits[E]()
	requireLen(out, X128MaxOutputLen[E](), "CompressDelta1")

	var vals [kernel.BlockSize]uint64
	stage(vals[:], block, n)
	kernel.Delta1Encode(vals[:], n, uint64(last), w)
	unstage(block, vals[:], n)

	b := bitWidthOf(vals[:], n)
	written := kernel.Pack128(out, vals[:], b, w, n, polyfill.Select())
	return CompressionDetails{CompressedBitLength: b, BytesWritten: written}
}

// DecompressDelta1 reverses CompressDelta1.
func DecompressDelta1[E Elem](out []E, in []byte, n, b int, last E) int {
	validateLength(n)
	w := elemBits[E]()
	validateBitWidth(b, w)
	requireLen(in, kernel.CompressedSize(b, n), "DecompressDelta1")

	var vals [kernel.BlockSize]uint64
	read := kernel.Unpack128(vals[:], in, b, w, n, polyfill.Select())
	var outVals [kernel.BlockSize]uint64
	kernel.Delta1Decode(outVals[:n], vals[:n], n, uint64(last), w)
	unstage(out, outVals[:], n)
	return read
}

// CompressAdaptiveDelta delta-encodes block[0:n] in place, subtracts the
// per-block minimum delta from every difference, writes that minimum as a
// little-endian sizeof(E)-byte prefix at out[0:sizeof(E)), and packs the
// adjusted deltas after it. out must be at least
// X128MaxOutputLenAdaptive[E]() bytes.
func CompressAdaptiveDelta[E Elem](out []byte, block []E, n int, last E) CompressionDetails {
	validateLength(n)
	w := elemBits[E]()
	eb := elemBytes[E]()
	requireLen(out, X128MaxOutputLenAdaptive[E](), "CompressAdaptiveDelta")

	var vals [kernel.BlockSize]uint64
	stage(vals[:], block, n)
	minDelta := kernel.AdaptiveDeltaEncode(vals[:], n, uint64(last), w)
	unstage(block, vals[:], n)

	b := bitWidthOf(vals[:], n)
	putElemLE[E](out[:eb], minDelta)
	written := kernel.Pack128(out[eb:], vals[:], b, w, n, polyfill.Select())
	return CompressionDetails{CompressedBitLength: b, BytesWritten: eb + written}
}

// DecompressAdaptiveDelta reverses CompressAdaptiveDelta: it reads the
// minimum-delta prefix, unpacks the adjusted deltas, and broadcasts the
// minimum back in during the prefix-sum accumulation.
func DecompressAdaptiveDelta[E Elem](out []E, in []byte, n, b int, last E) int {
	validateLength(n)
	w := elemBits[E]()
	validateBitWidth(b, w)
	eb := elemBytes[E]()
	requireLen(in, eb+kernel.CompressedSize(b, n), "DecompressAdaptiveDelta")

	minDelta := getElemLE[E](in[:eb])
	var vals [kernel.BlockSize]uint64
	read := kernel.Unpack128(vals[:], in[eb:], b, w, n, polyfill.Select())
	var outVals [kernel.BlockSize]uint64
	kernel.AdaptiveDeltaDecode(outVals[:n], vals[:n], n, uint64(last), w, minDelta)
	unstage(out, outVals[:], n)
	return eb + read
}
