package kernel

import (
	"math/rand"
	"testing"

	"github.com/lnx-search/upack-go/internal/polyfill"
	"github.com/stretchr/testify/assert"
)

func TestPack128RoundTrip(t *testing.T) {
	assert := assert.New(t)
	mv := polyfill.Select()
	rng := rand.New(rand.NewSource(11))

	for _, n := range []int{0, 1, 63, 64, 65, 100, 127, 128} {
		for _, b := range []int{0, 1, 7, 13, 32} {
			vals := make([]uint64, BlockSize)
			for i := 0; i < n; i++ {
				if b == 0 {
					vals[i] = 0
				} else {
					vals[i] = uint64(rng.Int63()) % (uint64(1) << uint(b))
				}
			}
			out := make([]byte, MaxCompressedSize(b, BlockSize))
			written := Pack128(out, vals, b, 32, n, mv)
			assert.Equal(CompressedSize(b, n), written)

			got := make([]uint64, BlockSize)
			read := Unpack128(got, out, b, 32, n, mv)
			assert.Equal(written, read)
			assert.Equal(vals[:n], got[:n])
		}
	}
}

func TestPack128RightHalfOffsetIsFixed(t *testing.T) {
	assert := assert.New(t)
	mv := polyfill.Select()

	b := 5
	full := make([]uint64, BlockSize)
	for i := range full {
		full[i] = uint64(i) % 32
	}

	offset := MaxCompressedSize(b, HalfBlockSize)
	for _, n := range []int{65, 96, 128} {
		out := make([]byte, MaxCompressedSize(b, BlockSize))
		written := Pack128(out, full, b, 32, n, mv)
		assert.Equal(CompressedSize(b, n), written)

		// The right half's bytes start at the fixed offset, whatever n is.
		right := make([]byte, MaxCompressedSize(b, HalfBlockSize))
		rn := PackWidth(right, full[HalfBlockSize:n], b, 32, n-HalfBlockSize, mv)
		assert.Equal(right[:rn], out[offset:offset+rn], "n=%d", n)
	}
}

func TestUnpack128ZeroFillsBeyondN(t *testing.T) {
	assert := assert.New(t)
	mv := polyfill.Select()

	n := 10
	b := 4
	vals := make([]uint64, BlockSize)
	for i := 0; i < n; i++ {
		vals[i] = 15
	}
	out := make([]byte, MaxCompressedSize(b, BlockSize))
	Pack128(out, vals, b, 32, n, mv)

	got := make([]uint64, BlockSize)
	for i := range got {
		got[i] = 0xDEAD
	}
	Unpack128(got, out, b, 32, n, mv)
	for i := n; i < 64; i++ {
		assert.Equal(uint64(0), got[i], "lane %d", i)
	}
}
