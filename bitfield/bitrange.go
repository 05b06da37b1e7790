package bitfield

import (
	"github.com/spacemeshos/bits/shared"
)

// MaxWidth is the widest range, in bits, that Insert and Retrieve accept.
const MaxWidth = 64

// span is the part of a bit range that falls within a single byte.
type span struct {
	index int  // byte index
	bits  uint // number of bits of the range held by the byte
	shift uint // distance between the span's last bit and the byte's last bit
	last  bool // whether this is the last byte of the range
}

// validate checks the inclusive range [start, stop] against the buffer
// length and the bit width of the target integer.
func (bf *BitField) validate(op string, start, stop, width uint) error {
	var err error
	switch {
	case start > stop:
		err = ErrNegativeRange
	case uint64(stop/shared.BitsPerByte) >= uint64(len(bf.bytes)):
		err = ErrInvalidIndex
	case stop-start+1 > width:
		err = ErrExceededDataRange
	default:
		return nil
	}

	return &RangeError{Op: op, Start: start, Stop: stop, Len: len(bf.bytes), Width: width, Err: err}
}

// spans partitions a validated range into per-byte spans, from the first
// (most-significant) byte to the last.
func spans(start, stop uint, fn func(s span, offset uint)) {
	startByte := start / shared.BitsPerByte
	stopByte := stop / shared.BitsPerByte

	for b := startByte; b <= stopByte; b++ {
		subStart := shared.MaxUint(b*shared.BitsPerByte, start)
		endOfByte := (b+1)*shared.BitsPerByte - 1
		subStop := shared.MinUint(endOfByte, stop)

		s := span{
			index: int(b),
			bits:  subStop - subStart + 1,
			last:  b == stopByte,
		}
		if s.last {
			s.shift = endOfByte - subStop
		}

		// offset is the position of the span's last bit, counted from the
		// least-significant bit of the range value.
		fn(s, stop-subStop)
	}
}

func byteMask(bits uint) byte {
	return byte((uint32(1) << bits) - 1)
}

// Insert writes the low stop-start+1 bits of value into the inclusive bit
// range [start, stop]. Higher bits of value are discarded. Bits outside the
// range are preserved.
//
// Insert fails, leaving the buffer untouched, with ErrNegativeRange if
// start > stop, ErrInvalidIndex if stop lies beyond the buffer, or
// ErrExceededDataRange if the range is wider than 64 bits.
func (bf *BitField) Insert(value uint64, start, stop uint) error {
	if err := bf.validate("insert", start, stop, MaxWidth); err != nil {
		return err
	}
	bf.insert(value, start, stop)
	return nil
}

func (bf *BitField) insert(value uint64, start, stop uint) {
	spans(start, stop, func(s span, offset uint) {
		mask := byteMask(s.bits)
		v := byte(value>>offset) & mask

		// The range doesn't necessarily end on a byte boundary.
		if s.last {
			mask <<= s.shift
			v <<= s.shift
		}

		bf.bytes[s.index] = bf.bytes[s.index]&^mask | v
	})
}

// Retrieve returns the inclusive bit range [start, stop] as an unsigned
// integer, where the range's first bit is the most-significant one.
//
// Retrieve fails with the same errors as Insert.
func (bf *BitField) Retrieve(start, stop uint) (uint64, error) {
	if err := bf.validate("retrieve", start, stop, MaxWidth); err != nil {
		return 0, err
	}
	return bf.retrieve(start, stop), nil
}

func (bf *BitField) retrieve(start, stop uint) uint64 {
	var value uint64
	spans(start, stop, func(s span, _ uint) {
		mask := byteMask(s.bits) << s.shift
		v := (bf.bytes[s.index] & mask) >> s.shift
		value = value<<s.bits | uint64(v)
	})
	return value
}
