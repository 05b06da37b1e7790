package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// shiftCmd represents the shift command.
var shiftCmd = &cobra.Command{
	Use:   "shift <left|right> <in> <n> <out>",
	Short: "Shift a buffer by n bits",
	Long: `shift logically shifts the buffer stored in in by n bits, and saves the
result to out. The length is unchanged: bits shifted out are discarded and
vacated bits are zero.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "left" && args[0] != "right" {
			return fmt.Errorf("unknown direction %q; expected: left or right", args[0])
		}
		n, err := strconv.ParseUint(args[2], 0, 0)
		if err != nil {
			return fmt.Errorf("invalid shift %q: %w", args[2], err)
		}

		bf, err := load(args[1])
		if err != nil {
			return err
		}

		if args[0] == "left" {
			return save(args[3], bf.ShiftLeft(uint(n)))
		}
		return save(args[3], bf.ShiftRight(uint(n)))
	},
}

func init() {
	rootCmd.AddCommand(shiftCmd)
}
