package cmd

import (
	"fmt"
	"strconv"

	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/bitfield"
)

var insertWidth int

// insertCmd represents the insert command.
var insertCmd = &cobra.Command{
	Use:   "insert <file> <value> <start> <stop>",
	Short: "Insert a value into a bit range",
	Long: `insert packs value into the inclusive bit range [start, stop] of the buffer
stored in file, and saves the buffer back. Bits of value beyond the range width
are discarded. Bit 0 is the most-significant bit of the first byte.

--width selects the integer width the value and the range must fit in.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validWidth(insertWidth); err != nil {
			return err
		}
		value, err := strconv.ParseUint(args[1], 0, insertWidth)
		if err != nil {
			return fmt.Errorf("invalid %d-bit value %q: %w", insertWidth, args[1], err)
		}
		start, stop, err := parseRange(args[2], args[3])
		if err != nil {
			return err
		}

		bf, err := load(args[0])
		if err != nil {
			return err
		}
		if err := insert(bf, value, start, stop, insertWidth); err != nil {
			return err
		}
		smlog.Debug("inserted %#x into [%d, %d] of %v", value, start, stop, args[0])

		return save(args[0], bf)
	},
}

func insert(bf *bitfield.BitField, value uint64, start, stop uint, width int) error {
	switch width {
	case 8:
		return bf.InsertU8(uint8(value), start, stop)
	case 16:
		return bf.InsertU16(uint16(value), start, stop)
	case 32:
		return bf.InsertU32(uint32(value), start, stop)
	default:
		return bf.InsertU64(value, start, stop)
	}
}

func init() {
	rootCmd.AddCommand(insertCmd)

	insertCmd.Flags().IntVar(&insertWidth, "width", 64, "integer width: 8, 16, 32 or 64")
}
