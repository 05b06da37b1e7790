package bitfield

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeRange     = errors.New("bit range can not be negative")
	ErrInvalidIndex      = errors.New("bit range is out of bounds")
	ErrExceededDataRange = errors.New("bit range exceeds the data width")

	// ErrInternal signals a violated engine invariant. It is never returned by
	// Insert or Retrieve.
	ErrInternal = errors.New("internal error")
)

// RangeError describes a rejected bit range.
type RangeError struct {
	Op    string
	Start uint
	Stop  uint
	Len   int  // buffer length in bytes
	Width uint // bit width of the target integer
	Err   error
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("bitfield: %v [%d, %d] (len: %d bytes, width: %d bits): %v",
		err.Op, err.Start, err.Stop, err.Len, err.Width, err.Err)
}

func (err *RangeError) Unwrap() error {
	return err.Err
}
