package cmd

import (
	"fmt"
	"strconv"

	"github.com/spacemeshos/smutil"

	"github.com/spacemeshos/bits/bitfield"
	"github.com/spacemeshos/bits/persistence"
)

func load(path string) (*bitfield.BitField, error) {
	path = smutil.GetCanonicalPath(path)
	return persistence.Load(path, persistence.FormatFor(path))
}

func save(path string, bf *bitfield.BitField) error {
	path = smutil.GetCanonicalPath(path)
	return persistence.Save(path, bf, persistence.FormatFor(path))
}

func parseBit(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid bit index %q: %w", s, err)
	}
	return uint(v), nil
}

func parseRange(start, stop string) (uint, uint, error) {
	b, err := parseBit(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := parseBit(stop)
	if err != nil {
		return 0, 0, err
	}
	return b, e, nil
}

func validWidth(width int) error {
	switch width {
	case 8, 16, 32, 64:
		return nil
	default:
		return fmt.Errorf("invalid width %d; expected: 8, 16, 32 or 64", width)
	}
}
