package bitfield

import (
	"bytes"

	"github.com/spacemeshos/bits/shared"
)

// BitField is an ordered, growable sequence of bytes addressable at bit
// granularity. The zero value is an empty buffer ready to use.
//
// A BitField is not safe for concurrent use; an Insert must not run
// concurrently with any other operation on the same instance.
type BitField struct {
	bytes []byte
}

// New returns an empty BitField.
func New() *BitField {
	return &BitField{bytes: make([]byte, 0)}
}

// WithCapacity returns a BitField holding size zero bytes.
func WithCapacity(size int) *BitField {
	return &BitField{bytes: make([]byte, size)}
}

// FromBytes returns a BitField holding a copy of b.
func FromBytes(b []byte) *BitField {
	bf := WithCapacity(len(b))
	copy(bf.bytes, b)
	return bf
}

// Len returns the length of the buffer in bytes.
func (bf *BitField) Len() int {
	return len(bf.bytes)
}

// BitLen returns the length of the buffer in bits.
func (bf *BitField) BitLen() int {
	return len(bf.bytes) * shared.BitsPerByte
}

// IsEmpty reports whether the buffer holds no bytes.
func (bf *BitField) IsEmpty() bool {
	return len(bf.bytes) == 0
}

// Grow appends size zero bytes to the end of the buffer.
func (bf *BitField) Grow(size int) {
	bf.bytes = append(bf.bytes, make([]byte, size)...)
}

// Clear empties the buffer.
func (bf *BitField) Clear() {
	bf.bytes = bf.bytes[:0]
}

// At returns the byte at index i. It panics if i is out of range.
func (bf *BitField) At(i int) byte {
	return bf.bytes[i]
}

// SetAt overwrites the byte at index i. It panics if i is out of range.
func (bf *BitField) SetAt(i int, v byte) {
	bf.bytes[i] = v
}

// Bytes returns the underlying bytes. The returned slice aliases the buffer
// and must be treated as read-only.
func (bf *BitField) Bytes() []byte {
	return bf.bytes
}

// Clone returns an independent copy of bf.
func (bf *BitField) Clone() *BitField {
	return FromBytes(bf.bytes)
}

// Equal reports whether both buffers hold the same bytes.
func (bf *BitField) Equal(other *BitField) bool {
	return bytes.Equal(bf.bytes, other.bytes)
}
