package cmd

import (
	"fmt"
	"time"

	"github.com/ibskk/subscription-tracker/internal/cli"
	"github.com/ibskk/subscription-tracker/internal/tracker"

	"github.com/spf13/cobra"
)

var flagUpcomingDays int

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Payments due within the next days",
	RunE:  runUpcoming,
}

func init() {
	upcomingCmd.Flags().IntVarP(&flagUpcomingDays, "days", "n", 0, "Window in days (default: from config)")
	rootCmd.AddCommand(upcomingCmd)
}

func runUpcoming(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	subs, err := s.ListAll()
	if err != nil {
		return err
	}

	days := flagUpcomingDays
	if days <= 0 {
		days = appConfig().General.UpcomingDays
	}
	due := tracker.Upcoming(subs, time.Now(), days)

	fmt.Println()
	if len(due) == 0 {
		fmt.Printf("  No payments due in the next %d days.\n", days)
		return nil
	}

	for _, up := range due {
		fmt.Println("  " + cli.Warn(fmt.Sprintf("%s • %s • %s • due %s",
			up.Name, cli.FormatCost(up.Amount, up.Cycle), up.Category, cli.FormatDays(up.DaysLeft))))
	}
	fmt.Println()

	return nil
}
