package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressedSize(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, CompressedSize(0, 128))
	assert.Equal(112, CompressedSize(7, 128))
	assert.Equal(125, CompressedSize(10, 100))
}

func TestMaxCompressedSize(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(8*13, MaxCompressedSize(13, 64))
	assert.Equal(16*13, MaxCompressedSize(13, 128))
}
