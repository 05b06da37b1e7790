package bitfield

import (
	"fmt"

	"github.com/spacemeshos/bits/shared"
)

// ShiftRight returns a copy of bf logically shifted right by n bits, i.e.
// toward the last byte. The length is unchanged; bits shifted past the end
// are discarded and vacated bits are zero.
func (bf *BitField) ShiftRight(n uint) *BitField {
	result := WithCapacity(bf.Len())
	total := uint(bf.BitLen())

	// Window j of the result is filled from the window starting at i = j-n.
	for i, j := uint(0), n; j < total; i, j = i+shared.BitsPerByte, j+shared.BitsPerByte {
		width := window(j, total)
		move(result, bf, i, j, width)
	}

	return result
}

// ShiftLeft returns a copy of bf logically shifted left by n bits, i.e.
// toward the first byte. The length is unchanged; bits shifted past the
// beginning are discarded and vacated bits are zero.
func (bf *BitField) ShiftLeft(n uint) *BitField {
	result := WithCapacity(bf.Len())
	total := uint(bf.BitLen())

	// Window i of the result is filled from the window starting at j = i+n.
	for i, j := uint(0), n; j < total; i, j = i+shared.BitsPerByte, j+shared.BitsPerByte {
		width := window(j, total)
		move(result, bf, j, i, width)
	}

	return result
}

// window returns the width of the 8-bit stride starting at bit j, clipped to
// the total bit length.
func window(j, total uint) uint {
	if j+shared.BitsPerByte > total {
		return total - j
	}
	return shared.BitsPerByte
}

// move copies width bits from src, starting at bit from, into dst, starting
// at bit to.
func move(dst, src *BitField, from, to, width uint) {
	v, err := src.Retrieve(from, from+width-1)
	if err != nil {
		panic(fmt.Errorf("%w: shift: %w", ErrInternal, err))
	}
	if err := dst.Insert(v, to, to+width-1); err != nil {
		panic(fmt.Errorf("%w: shift: %w", ErrInternal, err))
	}
}
