package persistence

import (
	"bytes"
	"fmt"

	"github.com/nullstyle/go-xdr/xdr3"
	"github.com/spacemeshos/sha256-simd"

	"github.com/spacemeshos/bits/bitfield"
)

const RecordVersion = 1

// Record is the envelope persisted for a BitField.
type Record struct {
	Version  uint32
	Checksum [32]byte
	Data     []byte
}

func NewRecord(bf *bitfield.BitField) *Record {
	data := bf.Clone().Bytes()
	return &Record{
		Version:  RecordVersion,
		Checksum: sha256.Sum256(data),
		Data:     data,
	}
}

func (r *Record) MarshalBinary() ([]byte, error) {
	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, r); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (r *Record) UnmarshalBinary(data []byte) error {
	if _, err := xdr.Unmarshal(bytes.NewReader(data), r); err != nil {
		return fmt.Errorf("deserialization failure: %w", err)
	}
	return nil
}

// BitField verifies the record and returns its buffer.
func (r *Record) BitField() (*bitfield.BitField, error) {
	if r.Version != RecordVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	if sha256.Sum256(r.Data) != r.Checksum {
		return nil, ErrChecksumMismatch
	}
	return bitfield.FromBytes(r.Data), nil
}
