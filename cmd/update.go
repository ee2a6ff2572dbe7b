package cmd

import (
	"errors"
	"fmt"

	"github.com/ibskk/subscription-tracker/internal/cli"
	"github.com/ibskk/subscription-tracker/internal/store"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Replace all fields of an existing subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().Float64VarP(&flagAddAmount, "amount", "a", 0, "Cost per billing cycle")
	updateCmd.Flags().StringVarP(&flagAddCycle, "cycle", "c", "Monthly", "Billing cycle: Monthly or Yearly")
	updateCmd.Flags().StringVarP(&flagAddCategory, "category", "g", "Other", "Category")
	updateCmd.Flags().StringVarP(&flagAddNext, "next", "p", "", "Next payment date (YYYY-MM-DD)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, args []string) error {
	sub, err := parseSubscription(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Update(sub); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Absence is surfaced but never fatal.
			fmt.Printf("  No subscription named %q.\n", sub.Name)
			return nil
		}
		return err
	}

	fmt.Println(cli.OK(fmt.Sprintf("  Subscription updated: %s", sub.Name)))
	return nil
}
