package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ibskk/subscription-tracker/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// addValues backs the add-subscription form fields.
type addValues struct {
	name     string
	amount   string
	cycle    string
	category string
	next     string
}

func newAddValues() addValues {
	return addValues{
		amount:   "0",
		cycle:    string(model.CycleMonthly),
		category: string(model.CategoryOther),
		next:     time.Now().Format(model.DateLayout),
	}
}

func newAddForm(v *addValues) *huh.Form {
	cycleOpts := make([]huh.Option[string], 0, len(model.Cycles))
	for _, c := range model.Cycles {
		cycleOpts = append(cycleOpts, huh.NewOption(string(c), string(c)))
	}

	categoryOpts := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		categoryOpts = append(categoryOpts, huh.NewOption(string(c), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subscription Name").
				Placeholder("Netflix").
				Value(&v.name),

			huh.NewInput().
				Title("Cost ($)").
				Value(&v.amount).
				Validate(func(s string) error {
					amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("not a number: %q", s)
					}
					if amount < 0 {
						return fmt.Errorf("cost must be >= 0")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Billing Cycle").
				Options(cycleOpts...).
				Value(&v.cycle),

			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&v.category),

			huh.NewInput().
				Title("Next Payment Date").
				Placeholder(model.DateLayout).
				Value(&v.next).
				Validate(func(s string) error {
					if _, err := time.Parse(model.DateLayout, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),
		).Title("Add Subscription"),
	)
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		a.adding = false
		a.addForm = nil

		// A blank name skips the add without erroring, matching the
		// entry form's permissive behavior.
		name := strings.TrimSpace(a.addVals.name)
		if name == "" {
			return a, nil
		}

		// Field validators already ran, so these parses cannot fail.
		amount, _ := strconv.ParseFloat(strings.TrimSpace(a.addVals.amount), 64)
		next, _ := time.Parse(model.DateLayout, strings.TrimSpace(a.addVals.next))

		sub := model.Subscription{
			Name:        name,
			Amount:      amount,
			Cycle:       model.BillingCycle(a.addVals.cycle),
			Category:    model.Category(a.addVals.category),
			NextPayment: next,
		}
		return a, upsertCmd(a.st, sub)
	}

	if a.addForm.State == huh.StateAborted {
		a.adding = false
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}
