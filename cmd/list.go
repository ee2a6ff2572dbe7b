package cmd

import (
	"fmt"
	"time"

	"github.com/ibskk/subscription-tracker/internal/cli"
	"github.com/ibskk/subscription-tracker/internal/tracker"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all subscriptions",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
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
		return nil
	}

	now := time.Now()
	dueSoonDays := appConfig().General.DueSoonDays
	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		days := tracker.DaysUntil(sub.NextPayment, now)
		due := ""
		if tracker.IsDueSoon(sub.NextPayment, now, dueSoonDays) {
			due = "due soon"
		}
		rows = append(rows, []string{
			sub.Name,
			cli.FormatMoney(sub.Amount),
			string(sub.Cycle),
			string(sub.Category),
			cli.FormatDate(sub.NextPayment),
			fmt.Sprintf("%d", days),
			due,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Your Subscriptions",
		Headers: []string{"Name", "Cost", "Cycle", "Category", "Next Payment", "Days", ""},
		Rows:    rows,
	}))

	return nil
}
