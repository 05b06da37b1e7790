package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/bitfield"
	"github.com/spacemeshos/bits/config"
	"github.com/spacemeshos/bits/persistence"
	"github.com/spacemeshos/bits/shared"
	"github.com/spacemeshos/bits/verifying"
)

const maxReportedFaults = 16

var (
	verifySeed            int64
	verifyNonInterference bool
	verifyMaxFaults       int
	verifySaveFaults      bool
)

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the bit-range engine round trip",
	Long: `verify inserts every value of the configured width at each of the configured
start bits, retrieves it back and reports any mismatch. Faulting buffers can be
saved to the data directory for inspection with dump.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var opts []verifying.OptionFunc
		if cmd.Flags().Changed("seed") {
			opts = append(opts, verifying.WithRandomValues(verifySeed))
		}
		if verifyNonInterference {
			opts = append(opts, verifying.WithNonInterference())
		}
		if verifyMaxFaults > 0 {
			opts = append(opts, verifying.WithMaxFaults(verifyMaxFaults))
		}

		return runVerify(ctx, cmd.OutOrStdout(), cfg, &smlog.AppLog, verifySaveFaults, opts...)
	},
}

func runVerify(ctx context.Context, out io.Writer, cfg *config.Config, logger shared.Logger, keepFaults bool, opts ...verifying.OptionFunc) error {
	t := time.Now()
	report, err := verifying.VerifyRoundTrip(ctx, cfg, logger, opts...)
	if err != nil && report == nil {
		return err
	}
	elapsed := time.Since(t)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"capacity", "value bits", "offsets", "checked", "faults", "elapsed"})
	table.SetBorder(true)
	table.Append([]string{
		strconv.FormatUint(uint64(cfg.Capacity), 10),
		strconv.FormatUint(uint64(cfg.ValueBits), 10),
		strconv.FormatUint(uint64(cfg.Offsets), 10),
		strconv.FormatUint(report.Checked, 10),
		strconv.Itoa(len(report.Faults)),
		elapsed.Round(time.Millisecond).String(),
	})
	table.Render()

	if len(report.Faults) > 0 {
		faults := tablewriter.NewWriter(out)
		faults.SetHeader([]string{"offset", "value", "got", "error"})
		for i, f := range report.Faults {
			if i == maxReportedFaults {
				break
			}
			var msg string
			if f.Err != nil {
				msg = f.Err.Error()
			}
			faults.Append([]string{
				strconv.FormatUint(uint64(f.Offset), 10),
				fmt.Sprintf("%#x", f.Value),
				fmt.Sprintf("%#x", f.Got),
				msg,
			})
		}
		faults.Render()

		if keepFaults {
			if err := saveFaults(cfg.DataDir, report.Faults); err != nil {
				return err
			}
		}
	}

	if err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("verification failed with %d faults", len(report.Faults))
	}
	return nil
}

func saveFaults(dir string, faults []verifying.Fault) error {
	if err := os.MkdirAll(dir, shared.OwnerReadWriteExec); err != nil {
		return fmt.Errorf("dir creation failure: %w", err)
	}
	for _, f := range faults {
		name := fmt.Sprintf("fault_%d_%x%s", f.Offset, f.Value, persistence.EnvelopeExt)
		if err := persistence.Save(filepath.Join(dir, name), bitfield.FromBytes(f.Snapshot), persistence.Envelope); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	flags := verifyCmd.Flags()
	flags.Uint("capacity", cfg.Capacity, "buffer size, in bytes")
	flags.Uint("valuebits", cfg.ValueBits, "width of every inserted value, in bits")
	flags.Uint("offsets", cfg.Offsets, "number of start bits to verify, beginning at bit 0")
	flags.Uint64("numvalues", cfg.NumValues, "number of values verified at each start bit")
	flags.Uint64("lograte", cfg.LogRate, "log progress every this many values")

	flags.Int64Var(&verifySeed, "seed", 0, "verify random values drawn from this seed instead of a sequence")
	flags.BoolVar(&verifyNonInterference, "noninterference", false, "also verify that bits outside each range are untouched")
	flags.IntVar(&verifyMaxFaults, "maxfaults", 0, "stop after this many faults (0 for no limit)")
	flags.BoolVar(&verifySaveFaults, "savefaults", false, "save each faulting buffer to the data directory")
}
