package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/bitfield"
)

var retrieveWidth int

// retrieveCmd represents the retrieve command.
var retrieveCmd = &cobra.Command{
	Use:   "retrieve <file> <start> <stop>",
	Short: "Print the value of a bit range",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validWidth(retrieveWidth); err != nil {
			return err
		}
		start, stop, err := parseRange(args[1], args[2])
		if err != nil {
			return err
		}

		bf, err := load(args[0])
		if err != nil {
			return err
		}
		value, err := retrieve(bf, start, stop, retrieveWidth)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d (%#x)\n", value, value)
		return nil
	},
}

func retrieve(bf *bitfield.BitField, start, stop uint, width int) (uint64, error) {
	switch width {
	case 8:
		v, err := bf.RetrieveU8(start, stop)
		return uint64(v), err
	case 16:
		v, err := bf.RetrieveU16(start, stop)
		return uint64(v), err
	case 32:
		v, err := bf.RetrieveU32(start, stop)
		return uint64(v), err
	default:
		return bf.RetrieveU64(start, stop)
	}
}

func init() {
	rootCmd.AddCommand(retrieveCmd)

	retrieveCmd.Flags().IntVar(&retrieveWidth, "width", 64, "integer width: 8, 16, 32 or 64")
}
