// Package persistence saves BitField buffers to disk and loads them back,
// either as raw bytes or as a checksummed XDR envelope.
package persistence

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spacemeshos/bits/bitfield"
	"github.com/spacemeshos/bits/shared"
)

type Format int

const (
	// Raw files hold exactly the buffer bytes.
	Raw Format = iota
	// Envelope files hold an XDR-encoded Record.
	Envelope
)

// EnvelopeExt is the file extension that selects the Envelope format.
const EnvelopeExt = ".bfx"

var (
	ErrUnknownFormat      = errors.New("unknown format")
	ErrInsufficientSpace  = errors.New("insufficient disk space")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrUnsupportedVersion = errors.New("unsupported record version")
)

func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case Envelope:
		return "envelope"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor returns the format implied by the file extension of path.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), EnvelopeExt) {
		return Envelope
	}
	return Raw
}

// Save writes bf to the file at path, replacing any previous content.
func Save(path string, bf *bitfield.BitField, format Format) error {
	var data []byte
	switch format {
	case Raw:
		data = bf.Bytes()
	case Envelope:
		var err error
		if data, err = NewRecord(bf).MarshalBinary(); err != nil {
			return fmt.Errorf("serialization failure: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if available := shared.AvailableSpace(filepath.Dir(path)); available < uint64(len(data)) {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrInsufficientSpace, len(data), available)
	}

	w, err := NewFileWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(data); err != nil {
		_, _ = w.Close()
		return fmt.Errorf("write to disk failure: %w", err)
	}
	if _, err := w.Close(); err != nil {
		return fmt.Errorf("write to disk failure: %w", err)
	}

	return nil
}

// Load reads a BitField from the file at path.
func Load(path string, format Format) (*bitfield.BitField, error) {
	r, err := NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read file failure: %w", err)
	}

	switch format {
	case Raw:
		return bitfield.FromBytes(data), nil
	case Envelope:
		rec := &Record{}
		if err := rec.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return rec.BitField()
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}
