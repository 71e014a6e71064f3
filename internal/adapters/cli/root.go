package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spaceminer-go/internal/infrastructure/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spaceminer",
		Short: "Space Miner - a headless asteroid mining simulation",
		Long: `Space Miner runs the asteroid mining simulation without a renderer.

A ship mines fracturing asteroids, hauls ore to refineries and sells refined
goods at trade stations. Every credit movement can be journalled to a
database and inspected afterwards.

Examples:
  spaceminer run --autopilot --ticks 36000
  spaceminer run --seed 42 --metrics
  spaceminer ledger sessions
  spaceminer ledger list --session <id> --category TRADING_REVENUE
  spaceminer ledger report --session <id>
  spaceminer market quotes --station "Nexus-7"
  spaceminer config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: search ., ./configs, /etc/spaceminer)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewMarketCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// loadConfig loads configuration honouring the global flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
