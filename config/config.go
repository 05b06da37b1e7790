package config

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"

	"github.com/spacemeshos/bits/shared"
)

const (
	MaxCapacity  = 1 << 20
	MinOffsets   = 1
	MinValueBits = 1
	MaxValueBits = shared.MaxValueBits
)

const (
	DefaultDataDirName = "data"
	DefaultCapacity    = 10
	DefaultValueBits   = 16
	DefaultOffsets     = 8
	DefaultNumValues   = 1 << 16
	DefaultLogRate     = 1 << 14
	DefaultLogDebug    = false
)

var DefaultDataDir = filepath.Join(smutil.GetUserHomeDirectory(), "bits", DefaultDataDirName)

type Config struct {
	DataDir string `mapstructure:"datadir"`

	// Buffer size, in bytes, used by the round-trip verifier.
	Capacity uint `mapstructure:"capacity"`
	// Width of every inserted value, in bits.
	ValueBits uint `mapstructure:"valuebits"`
	// Number of consecutive start bits to verify, beginning at bit 0.
	Offsets uint `mapstructure:"offsets"`
	// Number of values verified at each offset.
	NumValues uint64 `mapstructure:"numvalues"`

	LogRate  uint64 `mapstructure:"lograte"`
	LogDebug bool   `mapstructure:"logdebug"`
}

func (cfg *Config) Validate() error {
	if cfg.Capacity == 0 || cfg.Capacity > MaxCapacity {
		return fmt.Errorf("invalid `Capacity`; expected: 1-%d, given: %d", MaxCapacity, cfg.Capacity)
	}

	if cfg.ValueBits < MinValueBits || cfg.ValueBits > MaxValueBits {
		return fmt.Errorf("invalid `ValueBits`; expected: %d-%d, given: %d", MinValueBits, MaxValueBits, cfg.ValueBits)
	}

	if cfg.Offsets < MinOffsets {
		return fmt.Errorf("invalid `Offsets`; expected: >= %d, given: %d", MinOffsets, cfg.Offsets)
	}

	bitLen := uint64(cfg.Capacity) * shared.BitsPerByte
	if lastBit := uint64(cfg.Offsets) - 1 + uint64(cfg.ValueBits); lastBit > bitLen {
		return fmt.Errorf("invalid `Offsets`; the last range ends at bit %d, beyond the %d-bit capacity", lastBit-1, bitLen)
	}

	if cfg.NumValues == 0 {
		return fmt.Errorf("invalid `NumValues`; expected: >= 1, given: %d", cfg.NumValues)
	}

	if cfg.ValueBits < 64 && cfg.NumValues > uint64(1)<<cfg.ValueBits {
		return fmt.Errorf("invalid `NumValues`; expected: <= %d for %d-bit values, given: %d",
			uint64(1)<<cfg.ValueBits, cfg.ValueBits, cfg.NumValues)
	}

	return nil
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir,
		Capacity:  DefaultCapacity,
		ValueBits: DefaultValueBits,
		Offsets:   DefaultOffsets,
		NumValues: DefaultNumValues,
		LogRate:   DefaultLogRate,
		LogDebug:  DefaultLogDebug,
	}
}
