package cmd

import (
	"fmt"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spacemeshos/bits/config"
)

// loadConfig resolves the configuration of cmd. Explicitly set flags take
// priority over the config file, which takes priority over the defaults.
func loadConfig(cmd *cobra.Command, fileLocation string) (*config.Config, error) {
	vip := viper.New()

	if fileLocation != "" {
		vip.SetConfigFile(smutil.GetCanonicalPath(fileLocation))
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := vip.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, err
	}
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.DataDir = smutil.GetCanonicalPath(cfg.DataDir)

	return cfg, nil
}
