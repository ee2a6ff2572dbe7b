package cmd

import (
	"fmt"
	"os"

	"github.com/ibskk/subscription-tracker/internal/config"
	"github.com/ibskk/subscription-tracker/internal/store"

	"github.com/spf13/cobra"
)

var flagDB string

var rootCmd = &cobra.Command{
	Use:   "subtrack",
	Short: "Personal subscription tracker",
	Long:  "Track recurring payments: costs, categories, and upcoming due dates.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to the subscription database (default: XDG data dir)")
}

// appConfig loads the config file, falling back to defaults on error, and
// clamps hand-edited values into usable ranges.
func appConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	return cfg.Normalize()
}

// openStore opens the store at the resolved path: --db flag first, then
// config override, then the XDG default.
func openStore() (*store.Store, error) {
	path := flagDB
	if path == "" {
		path = config.DBPath(appConfig())
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening subscription store: %w", err)
	}
	return s, nil
}
