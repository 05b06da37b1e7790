package cmd

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print a buffer in binary and hex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bf, err := load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%v: %v (%d bits)\n\n", args[0], bytefmt.ByteSize(uint64(bf.Len())), bf.BitLen())
		bf.WriteTable(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
