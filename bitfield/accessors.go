package bitfield

import (
	"math/bits"
)

// Unsigned is the set of unsigned integers that can be packed into a BitField.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// widthOf returns the bit width of T.
func widthOf[T Unsigned]() uint {
	var zero T
	return uint(bits.Len64(uint64(^zero)))
}

// checkWidth rejects a non-negative range wider than T before the buffer
// bounds are checked.
func checkWidth[T Unsigned](bf *BitField, op string, start, stop uint) error {
	width := widthOf[T]()
	if start <= stop && stop-start+1 > width {
		return &RangeError{Op: op, Start: start, Stop: stop, Len: len(bf.bytes), Width: width, Err: ErrExceededDataRange}
	}
	return bf.validate(op, start, stop, width)
}

// InsertUint inserts value into the inclusive bit range [start, stop] of bf,
// after checking that the range fits in T.
func InsertUint[T Unsigned](bf *BitField, value T, start, stop uint) error {
	if err := checkWidth[T](bf, "insert", start, stop); err != nil {
		return err
	}
	bf.insert(uint64(value), start, stop)
	return nil
}

// RetrieveUint retrieves the inclusive bit range [start, stop] of bf as a T,
// after checking that the range fits in T.
func RetrieveUint[T Unsigned](bf *BitField, start, stop uint) (T, error) {
	if err := checkWidth[T](bf, "retrieve", start, stop); err != nil {
		return 0, err
	}
	return T(bf.retrieve(start, stop)), nil
}

// InsertU8 inserts value into [start, stop], which must fit in 8 bits.
func (bf *BitField) InsertU8(value uint8, start, stop uint) error {
	return InsertUint(bf, value, start, stop)
}

// InsertU16 inserts value into [start, stop], which must fit in 16 bits.
func (bf *BitField) InsertU16(value uint16, start, stop uint) error {
	return InsertUint(bf, value, start, stop)
}

// InsertU32 inserts value into [start, stop], which must fit in 32 bits.
func (bf *BitField) InsertU32(value uint32, start, stop uint) error {
	return InsertUint(bf, value, start, stop)
}

// InsertU64 inserts value into [start, stop], which must fit in 64 bits.
func (bf *BitField) InsertU64(value uint64, start, stop uint) error {
	return InsertUint(bf, value, start, stop)
}

// RetrieveU8 retrieves [start, stop], which must fit in 8 bits.
func (bf *BitField) RetrieveU8(start, stop uint) (uint8, error) {
	return RetrieveUint[uint8](bf, start, stop)
}

// RetrieveU16 retrieves [start, stop], which must fit in 16 bits.
func (bf *BitField) RetrieveU16(start, stop uint) (uint16, error) {
	return RetrieveUint[uint16](bf, start, stop)
}

// RetrieveU32 retrieves [start, stop], which must fit in 32 bits.
func (bf *BitField) RetrieveU32(start, stop uint) (uint32, error) {
	return RetrieveUint[uint32](bf, start, stop)
}

// RetrieveU64 retrieves [start, stop], which must fit in 64 bits.
func (bf *BitField) RetrieveU64(start, stop uint) (uint64, error) {
	return RetrieveUint[uint64](bf, start, stop)
}
