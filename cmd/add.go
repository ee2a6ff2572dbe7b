package cmd

import (
	"fmt"
	"time"

	"github.com/ibskk/subscription-tracker/internal/cli"
	"github.com/ibskk/subscription-tracker/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddAmount   float64
	flagAddCycle    string
	flagAddCategory string
	flagAddNext     string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a subscription (or replace one with the same name)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().Float64VarP(&flagAddAmount, "amount", "a", 0, "Cost per billing cycle")
	addCmd.Flags().StringVarP(&flagAddCycle, "cycle", "c", string(model.CycleMonthly), "Billing cycle: Monthly or Yearly")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "g", string(model.CategoryOther), "Category: Streaming, Utilities, SaaS, Fitness, Finance, Other")
	addCmd.Flags().StringVarP(&flagAddNext, "next", "p", "", "Next payment date (YYYY-MM-DD)")
	rootCmd.AddCommand(addCmd)
}

// parseSubscription builds a validated record from command flags. Shared by
// add and update.
func parseSubscription(name string) (model.Subscription, error) {
	cycle, err := model.ParseCycle(flagAddCycle)
	if err != nil {
		return model.Subscription{}, err
	}
	category, err := model.ParseCategory(flagAddCategory)
	if err != nil {
		return model.Subscription{}, err
	}

	next := time.Now()
	if flagAddNext != "" {
		next, err = time.Parse(model.DateLayout, flagAddNext)
		if err != nil {
			return model.Subscription{}, fmt.Errorf("parsing --next: %w", err)
		}
	}

	return model.Subscription{
		Name:        name,
		Amount:      flagAddAmount,
		Cycle:       cycle,
		Category:    category,
		NextPayment: next,
	}, nil
}

func runAdd(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	// An empty name skips the add without erroring, same as submitting
	// the form with a blank name field.
	if name == "" {
		fmt.Println("  Nothing added: subscription name is empty.")
		return nil
	}

	sub, err := parseSubscription(name)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Upsert(sub); err != nil {
		return err
	}

	fmt.Println(cli.OK(fmt.Sprintf("  Subscription added: %s, %s, next payment %s",
		sub.Name, cli.FormatCost(sub.Amount, sub.Cycle), cli.FormatDate(sub.NextPayment))))
	return nil
}
