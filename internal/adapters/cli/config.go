package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Space Miner configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SM_* prefix, e.g. SM_SIMULATION_SEED)
2. Config file (config.yaml)
3. Default values

Examples:
  spaceminer config show
  SM_SIMULATION_WORLD_SIZE=10000 spaceminer config show`,
	}

	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// Never echo credentials
			cfg.Database.Password = redact(cfg.Database.Password)
			cfg.Database.URL = redact(cfg.Database.URL)

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}
