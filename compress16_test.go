package upack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint16DeltaRoundTrip(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(17))

	n := 80
	block := make([]uint16, n)
	var v uint16
	for i := range block {
		v += uint16(rng.Intn(5))
		block[i] = v
	}
	original := append([]uint16(nil), block...)
	out := make([]byte, X128MaxOutputLen[uint16]())

	details := CompressDelta(out, block, n, 0)
	got := make([]uint16, n)
	DecompressDelta(got, out, n, details.CompressedBitLength, 0)
	assert.Equal(original, got)
}

func TestUint16Delta1RoundTrip(t *testing.T) {
	assert := assert.New(t)
	n := 64
	block := make([]uint16, n)
	for i := range block {
		block[i] = uint16(i)*2 + 1
	}
	original := append([]uint16(nil), block...)
	out := make([]byte, X128MaxOutputLen[uint16]())

	details := CompressDelta1(out, block, n, 0)
	got := make([]uint16, n)
	DecompressDelta1(got, out, n, details.CompressedBitLength, 0)
	assert.Equal(original, got)
}

func TestUint16AdaptiveDeltaRoundTrip(t *testing.T) {
	assert := assert.New(t)
	n := 50
	block := make([]uint16, n)
	for i := range block {
		block[i] = uint16(100 + 3*i)
	}
	original := append([]uint16(nil), block...)
	out := make([]byte, X128MaxOutputLenAdaptive[uint16]())

	details := CompressAdaptiveDelta(out, block, n, 97)
	got := make([]uint16, n)
	DecompressAdaptiveDelta(got, out, n, details.CompressedBitLength, 97)
	assert.Equal(original, got)
}

func TestUint16BitWidthNeverExceedsSixteen(t *testing.T) {
	assert := assert.New(t)
	block := []uint16{0xFFFF, 0x1234}
	out := make([]byte, X128MaxOutputLen[uint16]())
	details := Compress(out, block, 2)
	assert.LessOrEqual(details.CompressedBitLength, 16)

	assert.Panics(func() {
		got := make([]uint16, 2)
		Decompress(got, out, 2, 17)
	})
}
