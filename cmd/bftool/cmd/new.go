package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/bitfield"
	"github.com/spacemeshos/bits/shared"
)

var (
	newSize int
	newBits uint64
)

// newCmd represents the new command.
var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create a zero-filled buffer",
	Long: `new writes a zero-filled buffer to the given file. The size is given either
in bytes with --size, or in bits with --bits, rounded up to whole bytes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size := newSize
		if cmd.Flags().Changed("bits") {
			size = int(shared.ByteLength(newBits))
		}
		if size < 0 {
			return errors.New("size can not be negative")
		}

		if err := save(args[0], bitfield.WithCapacity(size)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %v (%d bytes)\n", args[0], size)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().IntVar(&newSize, "size", 4, "buffer size, in bytes")
	newCmd.Flags().Uint64Var(&newBits, "bits", 0, "buffer size, in bits")
}
