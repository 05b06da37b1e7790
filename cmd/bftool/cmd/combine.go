package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/bitfield"
)

var combinators = map[string]func(a, b *bitfield.BitField) *bitfield.BitField{
	"and": (*bitfield.BitField).And,
	"or":  (*bitfield.BitField).Or,
	"xor": (*bitfield.BitField).Xor,
}

// combineCmd represents the combine command.
var combineCmd = &cobra.Command{
	Use:   "combine <and|or|xor> <a> <b> <out>",
	Short: "Combine two buffers bitwise",
	Long: `combine applies a bitwise operator to the buffers stored in a and b, and
saves the result to out. Buffers of different lengths are aligned at their last
byte; the result has the length of the longer buffer.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, ok := combinators[args[0]]
		if !ok {
			return fmt.Errorf("unknown operator %q; expected: and, or or xor", args[0])
		}

		a, err := load(args[1])
		if err != nil {
			return err
		}
		b, err := load(args[2])
		if err != nil {
			return err
		}

		return save(args[3], op(a, b))
	},
}

// notCmd represents the not command.
var notCmd = &cobra.Command{
	Use:   "not <in> <out>",
	Short: "Complement a buffer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bf, err := load(args[0])
		if err != nil {
			return err
		}
		return save(args[1], bf.Not())
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(notCmd)
}
