package polyfill

// Mover implements the single-bit-plane primitives: movemask (pack a
// lane-per-bit boolean vector into a byte) and its inverse, mask-to-bytes
// (expand a bit mask back into a lane vector with each lane in
// {0, set-byte}). Every backend — scalar, AVX2,
// AVX-512, NEON — implements Mover identically in terms of observable
// output; only the internal chunking differs, which is what actually
// distinguishes one "backend" from another in this repository (see
// DESIGN.md: true hardware intrinsics are out of scope without a build/test
// loop, so each backend reproduces the scalar algorithm's bytes exactly at
// a different simulated register width).
type Mover interface {
	// Name identifies the backend, for diagnostics and backend-agreement tests.
	Name() string

	// Movemask packs m boolean lanes (vals[i] != 0) into ceil(m/8) bytes,
	// one bit per lane, LSB-first within each byte.
	Movemask(vals []uint8, m int, out []uint8) int

	// MovemaskInverse expands ceil(m/8) bytes of packed bits back into m
	// lanes of {0, 1}, via MaskToBytes with a set-lane value of 1.
	MovemaskInverse(in []uint8, m int, vals []uint8) int
}

// MaskToBytes expands the bit at position i of mask into a full lane value:
// 0 if clear, allOnes if set. Movemask's inverse is built on top of it, with
// allOnes = 1.
func MaskToBytes(mask uint64, lane int, allOnes uint8) uint8 {
	if mask&(1<<uint(lane)) != 0 {
		return allOnes
	}
	return 0
}
