// Package model defines domain types for subscriptions and their aggregates.
package model

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the on-disk format for payment dates (ISO-8601, date only).
const DateLayout = "2006-01-02"

var (
	ErrEmptyName      = errors.New("subscription name is empty")
	ErrNegativeAmount = errors.New("amount must be non-negative")
)

// BillingCycle is how often a subscription bills.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "Monthly"
	CycleYearly  BillingCycle = "Yearly"
)

// Cycles lists all billing cycles in display order.
var Cycles = []BillingCycle{CycleMonthly, CycleYearly}

// Valid reports whether c is one of the known billing cycles.
func (c BillingCycle) Valid() bool {
	return c == CycleMonthly || c == CycleYearly
}

// ParseCycle converts a stored string into a BillingCycle.
func ParseCycle(s string) (BillingCycle, error) {
	c := BillingCycle(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown billing cycle %q", s)
	}
	return c, nil
}

// Category is the spending bucket a subscription belongs to.
type Category string

const (
	CategoryStreaming Category = "Streaming"
	CategoryUtilities Category = "Utilities"
	CategorySaaS      Category = "SaaS"
	CategoryFitness   Category = "Fitness"
	CategoryFinance   Category = "Finance"
	CategoryOther     Category = "Other"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryStreaming,
	CategoryUtilities,
	CategorySaaS,
	CategoryFitness,
	CategoryFinance,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a stored string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Subscription is a single recurring payment, keyed by name.
type Subscription struct {
	Name        string
	Amount      float64
	Cycle       BillingCycle
	Category    Category
	NextPayment time.Time
}

// Validate checks the invariants enforced at the store boundary.
func (s Subscription) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.Amount < 0 {
		return fmt.Errorf("%w: %.2f", ErrNegativeAmount, s.Amount)
	}
	if !s.Cycle.Valid() {
		return fmt.Errorf("unknown billing cycle %q", s.Cycle)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("unknown category %q", s.Category)
	}
	if s.NextPayment.IsZero() {
		return errors.New("next payment date is not set")
	}
	return nil
}

// MonthlyCost returns the monthly-equivalent cost: yearly amounts are
// divided by 12, monthly amounts pass through.
func (s Subscription) MonthlyCost() float64 {
	if s.Cycle == CycleYearly {
		return s.Amount / 12
	}
	return s.Amount
}
