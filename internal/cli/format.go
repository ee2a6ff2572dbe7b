// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/ibskk/subscription-tracker/internal/model"
)

// FormatMoney formats an on-screen dollar amount with two decimals.
// Raw exports bypass this and write the underlying numeric value.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatDays describes a days-remaining count for display.
// e.g., 0 -> "today", 1 -> "in 1 day", 5 -> "in 5 days", -2 -> "2 days overdue"
func FormatDays(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "in 1 day"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", -days)
	}
}

// FormatDate renders a payment date in the ISO form used everywhere else.
func FormatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

// FormatCost renders a cost with its billing cycle, matching the card text.
// e.g., "$9.99 (Monthly)"
func FormatCost(amount float64, cycle model.BillingCycle) string {
	return fmt.Sprintf("%s (%s)", FormatMoney(amount), cycle)
}
