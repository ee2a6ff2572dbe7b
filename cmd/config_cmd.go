// Package cmd implements the subtrack CLI commands.
package cmd

import (
	"fmt"

	"github.com/ibskk/subscription-tracker/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: "Print the config file location and values. On first run a default\n" +
		"config file is written so it can be edited in place.",
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, created, err := config.EnsureDefault()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if created {
		fmt.Println("  Status: created with defaults")
	} else {
		fmt.Println("  Status: loaded")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Due soon days: %d\n", cfg.General.DueSoonDays)
	fmt.Printf("    Upcoming days: %d\n", cfg.General.UpcomingDays)
	fmt.Printf("    Database:      %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Edit %s to change these values.\n", config.ConfigPath())
	return nil
}
