package bitfield

import (
	"github.com/spacemeshos/bits/shared"
)

// And returns the bitwise AND of bf and other.
//
// Buffers of different lengths are anchored at their last byte: the operation
// starts with the last byte of each buffer and continues backward until the
// first byte of either buffer is reached. The result has the length of the
// longer buffer, and its leading bytes that were not reached are zero.
//
// For example, 0xffff AND 0x55 yields 0x0055, regardless of operand order.
func (bf *BitField) And(other *BitField) *BitField {
	result := WithCapacity(shared.Max(bf.Len(), other.Len()))
	combine(result, bf, other, func(a, b byte) byte { return a & b })
	return result
}

// Or returns the bitwise OR of bf and other, anchored at the last byte as in
// And. Leading bytes that were not reached are copied from the longer buffer.
func (bf *BitField) Or(other *BitField) *BitField {
	result := longer(bf, other).Clone()
	combine(result, bf, other, func(a, b byte) byte { return a | b })
	return result
}

// Xor returns the bitwise XOR of bf and other, anchored at the last byte as in
// And. Leading bytes that were not reached are copied from the longer buffer.
func (bf *BitField) Xor(other *BitField) *BitField {
	result := longer(bf, other).Clone()
	combine(result, bf, other, func(a, b byte) byte { return a ^ b })
	return result
}

// Not returns the bitwise complement of bf.
func (bf *BitField) Not() *BitField {
	result := WithCapacity(bf.Len())
	for i, b := range bf.bytes {
		result.bytes[i] = ^b
	}
	return result
}

func longer(a, b *BitField) *BitField {
	if a.Len() < b.Len() {
		return b
	}
	return a
}

// combine walks x and y backward from their last bytes, storing op of each
// byte pair at the matching backward position of dst, until either operand
// is exhausted.
func combine(dst, x, y *BitField, op func(a, b byte) byte) {
	i, j, k := x.Len()-1, y.Len()-1, dst.Len()-1
	for i >= 0 && j >= 0 {
		dst.bytes[k] = op(x.bytes[i], y.bytes[j])
		i--
		j--
		k--
	}
}
