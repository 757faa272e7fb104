// Package upack implements a SIMD-accelerated bit-packing codec for fixed
// blocks of unsigned 16- or 32-bit integers.
//
// Given a block of up to 128 elements, the codec determines the smallest
// bit width needed to represent every value and writes exactly that many
// bits per value into a caller-owned byte buffer; Decompress reverses the
// process given the same bit width and length handed back by the caller.
// Three reversible transforms can run before packing: delta (non-decreasing
// sequences), delta-1 (strictly increasing sequences, e.g. sorted document
// IDs) and adaptive-delta (delta with the per-block minimum subtracted and
// stored alongside the block). The package keeps no global mutable state,
// and the codec functions retain no reference to caller buffers after a
// call returns (View, by contrast, keeps the slice passed to Load), so
// Compress/Decompress and their delta variants are safe for concurrent use
// as long as each goroutine owns the block/out slices it passes in.
//
// There is no in-band header: bit width, element count and transform mode
// are metadata the caller must track and pass back to the matching
// Decompress* call. CompressionDetails is the only metadata the core
// produces.
package upack
