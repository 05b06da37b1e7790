package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteLength(t *testing.T) {
	r := require.New(t)

	r.Equal(uint64(0), ByteLength(0))
	r.Equal(uint64(1), ByteLength(1))
	r.Equal(uint64(1), ByteLength(7))
	r.Equal(uint64(1), ByteLength(8))
	r.Equal(uint64(2), ByteLength(9))
	r.Equal(uint64(8), ByteLength(64))
}

func TestMinMax(t *testing.T) {
	r := require.New(t)

	r.Equal(4, Max(2, 4))
	r.Equal(0, Max(-1, 0))
	r.Equal(uint(3), MinUint(3, 3))
	r.Equal(uint(9), MaxUint(9, 1))
}
