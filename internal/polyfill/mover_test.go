package polyfill

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomBits(rng *rand.Rand, n int) []uint8 {
	vals := make([]uint8, n)
	for i := range vals {
		if rng.Intn(2) == 1 {
			vals[i] = 1
		}
	}
	return vals
}

func testMoverRoundTrip(t *testing.T, mv Mover) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 7, 8, 31, 32, 63, 64} {
		vals := randomBits(rng, n)
		out := make([]byte, (n+7)/8)
		written := mv.Movemask(vals, n, out)
		assert.Equal((n+7)/8, written)

		back := make([]uint8, n)
		read := mv.MovemaskInverse(out, n, back)
		assert.Equal(written, read)
		assert.Equal(vals, back)
	}
}

func TestScalarMoverRoundTrip(t *testing.T) {
	testMoverRoundTrip(t, Scalar)
}

func TestSelectReturnsUsableMover(t *testing.T) {
	assert := assert.New(t)
	mv := Select()
	assert.NotNil(mv)
	assert.NotEmpty(mv.Name())
	testMoverRoundTrip(t, mv)
}
