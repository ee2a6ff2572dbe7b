package cmd

import (
	"fmt"

	"github.com/ibskk/subscription-tracker/internal/config"
	"github.com/ibskk/subscription-tracker/internal/tui"
	"github.com/ibskk/subscription-tracker/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := appConfig()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background styling always emits ANSI codes;
	// lipgloss can otherwise fall back to the colorless Ascii profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	app := tui.NewApp(dbPath, cfg.General.DueSoonDays, cfg.General.UpcomingDays)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
