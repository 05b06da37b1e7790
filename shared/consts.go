package shared

import (
	"os"
)

const (
	BitsPerByte = 8

	// MaxValueBits is the widest integer that can be packed into a bit range.
	MaxValueBits = 64
)

const (
	OwnerReadWrite     = os.FileMode(0o600)
	OwnerReadWriteExec = os.FileMode(0o700)
)
