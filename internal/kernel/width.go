// Package kernel implements the bit-exact 64/128-element pack and unpack
// kernels: a single recursive routine per direction, parameterized by the
// *current* working width (32, 16, 8, 4, 2 or 1 bits) and lane count,
// rather than one hand-written function per bit width. The recursion
// narrows and recurses for b <= W/2, splits into low/high halves for
// W/2 < b <= W, and decomposes the byte-level leaf (b in [1..7]) into
// {4,2,1} atomic packers (3=2+1, 5=4+1, 6=4+2, 7=4+3).
package kernel

import (
	"encoding/binary"

	"github.com/lnx-search/upack-go/internal/polyfill"
)

// BytesFor returns ceil(m*w/8), the number of bytes a direct store (or any
// composition of atomic packers summing to w bits) occupies for m lanes.
func BytesFor(w, m int) int {
	return (m*w + 7) / 8
}

// PackWidth writes the low b bits of each of the m values in vals into out,
// using the recursive construction rule above, and returns the number of
// bytes written (= BytesFor(b, m)). w is the width vals are currently
// represented at (vals[i] < 1<<w for all i); the caller always starts the
// recursion at w == W (16 or 32).
func PackWidth(out []byte, vals []uint64, b, w, m int, mv polyfill.Mover) int {
	if b == 0 {
		return 0
	}
	if b == w {
		return directStore(out, vals, w, m, mv)
	}
	if b <= w/2 {
		// Narrow: every value already fits in w/2 bits (b <= w/2), so the
		// representation at the halved width is identical — the
		// narrow-unordered step degenerates to a width relabeling here.
		return PackWidth(out, vals, b, w/2, m, mv)
	}
	half := w / 2
	low := make([]uint64, m)
	high := make([]uint64, m)
	mask := uint64(1)<<uint(half) - 1
	for i := 0; i < m; i++ {
		low[i] = vals[i] & mask
		high[i] = vals[i] >> uint(half)
	}
	n1 := PackWidth(out, low, half, half, m, mv)
	n2 := PackWidth(out[n1:], high, b-half, half, m, mv)
	return n1 + n2
}

// UnpackWidth is the inverse of PackWidth: it reads BytesFor(b, m) bytes
// from in and reconstructs m values into vals, returning the bytes consumed.
func UnpackWidth(vals []uint64, in []byte, b, w, m int, mv polyfill.Mover) int {
	if b == 0 {
		for i := 0; i < m; i++ {
			vals[i] = 0
		}
		return 0
	}
	if b == w {
		return directLoad(vals, in, w, m, mv)
	}
	if b <= w/2 {
		return UnpackWidth(vals, in, b, w/2, m, mv)
	}
	half := w / 2
	low := make([]uint64, m)
	high := make([]uint64, m)
	n1 := UnpackWidth(low, in, half, half, m, mv)
	n2 := UnpackWidth(high, in[n1:], b-half, half, m, mv)
	for i := 0; i < m; i++ {
		vals[i] = low[i] | high[i]<<uint(half)
	}
	return n1 + n2
}

// directStore is the "b == w" terminal case: for w >= 8 it is a plain
// byte-aligned write; for w in {4, 2, 1} it dispatches to the lane-utility
// primitives (nibble pack, two-bit pack, movemask) that are themselves the
// direct-store operation at those widths.
func directStore(out []byte, vals []uint64, w, m int, mv polyfill.Mover) int {
	switch {
	case w >= 8:
		stride := w / 8
		for i := 0; i < m; i++ {
			putUintLE(out[i*stride:(i+1)*stride], vals[i])
		}
		return m * stride
	case w == 4:
		u8 := toUint8(vals, m)
		return polyfill.NibblePackValues(u8, m, out)
	case w == 2:
		u8 := toUint8(vals, m)
		return polyfill.TwoBitPackValues(u8, m, out)
	case w == 1:
		u8 := toUint8(vals, m)
		return mv.Movemask(u8, m, out)
	default:
		panic("kernel: unsupported direct-store width")
	}
}

func directLoad(vals []uint64, in []byte, w, m int, mv polyfill.Mover) int {
	switch {
	case w >= 8:
		stride := w / 8
		for i := 0; i < m; i++ {
			vals[i] = getUintLE(in[i*stride : (i+1)*stride])
		}
		return m * stride
	case w == 4:
		u8 := make([]uint8, m)
		n := polyfill.NibbleUnpackValues(in, m, u8)
		fromUint8(u8, m, vals)
		return n
	case w == 2:
		u8 := make([]uint8, m)
		n := polyfill.TwoBitUnpackValues(in, m, u8)
		fromUint8(u8, m, vals)
		return n
	case w == 1:
		u8 := make([]uint8, m)
		n := mv.MovemaskInverse(in, m, u8)
		fromUint8(u8, m, vals)
		return n
	default:
		panic("kernel: unsupported direct-load width")
	}
}

func putUintLE(dst []byte, v uint64) {
	switch len(dst) {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	default:
		panic("kernel: unsupported direct-store stride")
	}
}

func getUintLE(src []byte) uint64 {
	switch len(src) {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(src))
	case 4:
		return uint64(binary.LittleEndian.Uint32(src))
	default:
		panic("kernel: unsupported direct-load stride")
	}
}

func toUint8(vals []uint64, m int) []uint8 {
	out := make([]uint8, m)
	for i := 0; i < m; i++ {
		out[i] = uint8(vals[i])
	}
	return out
}

func fromUint8(in []uint8, m int, vals []uint64) {
	for i := 0; i < m; i++ {
		vals[i] = uint64(in[i])
	}
}
