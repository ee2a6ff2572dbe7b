package cmd

import (
	"fmt"
	"time"

	"github.com/ibskk/subscription-tracker/internal/cli"
	"github.com/ibskk/subscription-tracker/internal/tracker"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summary metrics and category spend",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	subs, err := s.ListAll()
	if err != nil {
		return err
	}

	if len(subs) == 0 {
		fmt.Println("\n  No subscriptions added yet.")
		fmt.Println("  Add one with `subtrack add`.")
		return nil
	}

	now := time.Now()
	stats := tracker.Summarize(subs, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SUBSCRIPTION TRACKER"))
	fmt.Println()

	rows := [][]string{
		{"Subscriptions", fmt.Sprintf("%d", stats.Count)},
		{"Avg Monthly Cost", cli.FormatMoney(stats.AvgMonthly)},
		{"Highest Subscription", cli.FormatMoney(stats.MaxMonthly)},
		{"Next Payment", fmt.Sprintf("%d days", stats.SoonestDays)},
		{"---"},
		{"Total Monthly Spend", cli.FormatMoney(stats.TotalMonthly)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Category bars
	ranked := tracker.CategorySpendRanked(subs)
	if len(ranked) > 0 {
		fmt.Println("\n  Monthly Spend by Category")
		maxSpend := ranked[0].Monthly
		labelW := 0
		for _, cs := range ranked {
			if len(cs.Category) > labelW {
				labelW = len(cs.Category)
			}
		}
		for _, cs := range ranked {
			fmt.Println(cli.RenderHorizontalBar(
				string(cs.Category), cli.FormatMoney(cs.Monthly),
				cs.Monthly, maxSpend, labelW, 30))
		}
	}

	// Upcoming payments
	window := appConfig().General.UpcomingDays
	due := tracker.Upcoming(subs, now, window)
	fmt.Printf("\n  Upcoming Payments (Next %d Days)\n", window)
	if len(due) == 0 {
		fmt.Printf("  No payments due in the next %d days.\n", window)
	} else {
		for _, up := range due {
			fmt.Println("  " + cli.Warn(fmt.Sprintf("%s • %s • %s • due %s",
				up.Name, cli.FormatCost(up.Amount, up.Cycle), up.Category, cli.FormatDays(up.DaysLeft))))
		}
	}
	fmt.Println()

	return nil
}
