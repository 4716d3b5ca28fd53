package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tycoon",
		Short: "Airline Tycoon CLI - inspect and drive the economy simulation",
		Long: `Airline Tycoon CLI provides commands to inspect and drive the daily
economy simulation against the configured save database.

Examples:
  tycoon status
  tycoon simulate --days 30
  tycoon fuel market
  tycoon fuel offers
  tycoon fuel buy --volume 50000 --days 30
  tycoon contracts offers
  tycoon contracts accept --offer <id> --route <id>
  tycoon loans request --amount 250000 --months 12`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewFuelCommand())
	rootCmd.AddCommand(NewContractsCommand())
	rootCmd.AddCommand(NewLoansCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
