// Package verifying exhaustively verifies the bit-range engine by inserting
// values at every configured offset and reading them back.
package verifying

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spacemeshos/bits/bitfield"
	"github.com/spacemeshos/bits/config"
	"github.com/spacemeshos/bits/shared"
)

// background fills the buffer before each insert when non-interference is
// verified, so that cleared and set bits are both exercised.
const background = 0xa5

// Fault is a single failed round trip.
type Fault struct {
	Offset uint   // start bit of the range
	Value  uint64 // inserted value
	Got    uint64 // retrieved value
	Err    error  // set if the engine rejected the range

	// Snapshot holds the buffer bytes right after the failed round trip.
	Snapshot []byte
}

func (f Fault) String() string {
	if f.Err != nil {
		return fmt.Sprintf("offset %d, value %#x: %v", f.Offset, f.Value, f.Err)
	}
	return fmt.Sprintf("offset %d, value %#x: got %#x", f.Offset, f.Value, f.Got)
}

// Report summarizes a verification run.
type Report struct {
	Checked uint64
	Faults  []Fault
}

func (r *Report) OK() bool {
	return len(r.Faults) == 0
}

// VerifyRoundTrip inserts cfg.NumValues values of cfg.ValueBits bits at each
// of the first cfg.Offsets start bits of a cfg.Capacity-byte buffer, and
// verifies that each retrieves back unchanged.
func VerifyRoundTrip(ctx context.Context, cfg *config.Config, logger shared.Logger, opts ...OptionFunc) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options := applyOpts(opts...)

	next := sequential()
	if options.seed != nil {
		next = random(*options.seed)
	}

	logger.Info("verifying: starting; capacity: %d bytes, value bits: %d, offsets: %d, values: %d",
		cfg.Capacity, cfg.ValueBits, cfg.Offsets, cfg.NumValues)

	bf := bitfield.WithCapacity(int(cfg.Capacity))
	mask := lowBits(cfg.ValueBits)
	report := &Report{}

	for offset := uint(0); offset < cfg.Offsets; offset++ {
		start, stop := offset, offset+cfg.ValueBits-1

		for i := uint64(0); i < cfg.NumValues; i++ {
			if err := ctx.Err(); err != nil {
				return report, fmt.Errorf("verifying: interrupted at offset %d: %w", offset, err)
			}

			value := next(i) & mask
			if options.nonInterference {
				fill(bf, background)
			}

			if fault, ok := roundTrip(bf, value, start, stop, options.nonInterference); !ok {
				fault.Snapshot = bf.Clone().Bytes()
				report.Faults = append(report.Faults, fault)
				logger.Warning("verifying: fault: %v", fault)
				if options.maxFaults > 0 && len(report.Faults) >= options.maxFaults {
					logger.Info("verifying: reached max faults (%d); stopping", options.maxFaults)
					return report, nil
				}
			}

			report.Checked++
			if cfg.LogRate > 0 && report.Checked%cfg.LogRate == 0 {
				logger.Debug("verifying: checked %d values", report.Checked)
			}
		}

		logger.Debug("verifying: offset %d completed", offset)
	}

	logger.Info("verifying: completed; checked: %d, faults: %d", report.Checked, len(report.Faults))
	return report, nil
}

func roundTrip(bf *bitfield.BitField, value uint64, start, stop uint, nonInterference bool) (Fault, bool) {
	fault := Fault{Offset: start, Value: value}

	if err := bf.Insert(value, start, stop); err != nil {
		fault.Err = err
		return fault, false
	}

	got, err := bf.Retrieve(start, stop)
	if err != nil {
		fault.Err = err
		return fault, false
	}
	if got != value {
		fault.Got = got
		return fault, false
	}

	if nonInterference {
		if err := untouched(bf, background, start, stop); err != nil {
			fault.Got = got
			fault.Err = err
			return fault, false
		}
	}

	return fault, true
}

// untouched verifies that every bit of bf outside [start, stop] still holds
// the bit of the background pattern.
func untouched(bf *bitfield.BitField, pattern byte, start, stop uint) error {
	reference := bitfield.WithCapacity(bf.Len())
	fill(reference, pattern)

	outside := reference.Xor(bf)
	for bit := uint(0); bit < uint(bf.BitLen()); bit++ {
		if bit >= start && bit <= stop {
			continue
		}
		v, err := outside.Retrieve(bit, bit)
		if err != nil {
			return err
		}
		if v != 0 {
			return fmt.Errorf("bit %d outside the range was modified", bit)
		}
	}
	return nil
}

func fill(bf *bitfield.BitField, pattern byte) {
	for i := 0; i < bf.Len(); i++ {
		bf.SetAt(i, pattern)
	}
}

func sequential() func(uint64) uint64 {
	return func(i uint64) uint64 { return i }
}

func random(seed int64) func(uint64) uint64 {
	rng := rand.New(rand.NewSource(seed))
	return func(uint64) uint64 { return rng.Uint64() }
}

func lowBits(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<width - 1
}
