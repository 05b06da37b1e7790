package cmd

import (
	"context"
	"fmt"
	"os"

	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/config"
)

var (
	Version string
	Commit  string

	cfg        = config.DefaultConfig()
	configFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bftool",
	Short: "Inspect and edit bit-addressable buffers",
	Long: `bftool creates, dumps and edits files holding bit-addressable buffers.
Values can be inserted into and retrieved from arbitrary bit ranges, and whole
buffers can be combined and shifted. Files with the .bfx extension are stored
in a checksummed envelope; any other file holds the raw buffer bytes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd, configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		smlog.DebugMode(cfg.LogDebug)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "path to configuration file")
	flags.String("datadir", cfg.DataDir, "directory for files written by verify")
	flags.Bool("logdebug", cfg.LogDebug, "whether to enable debug logging")
}
