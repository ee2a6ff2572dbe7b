// Package tracker computes derived views over subscriptions: due-soon
// flags, upcoming-payment windows, and summary aggregates.
package tracker

import (
	"sort"
	"time"

	"github.com/ibskk/subscription-tracker/internal/model"
)

// DueSoonThreshold is the default days-remaining cutoff for the due-soon flag.
const DueSoonThreshold = 7

// UpcomingWindow is the default window for the upcoming-payments list.
const UpcomingWindow = 7

// DaysUntil returns the whole calendar days between now and date, negative
// when date is in the past. Both values are truncated to local dates first
// so the time of day never shifts the count.
func DaysUntil(date, now time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// IsDueSoon reports whether date is at or below threshold days away.
// Overdue dates (negative day counts) also satisfy the predicate.
func IsDueSoon(date, now time.Time, threshold int) bool {
	return DaysUntil(date, now) <= threshold
}

// Upcoming filters subs to those whose payment falls within [0, window]
// days from now, sorted soonest-first. Ties keep input order.
func Upcoming(subs []model.Subscription, now time.Time, window int) []model.UpcomingPayment {
	var due []model.UpcomingPayment
	for _, sub := range subs {
		days := DaysUntil(sub.NextPayment, now)
		if days >= 0 && days <= window {
			due = append(due, model.UpcomingPayment{Subscription: sub, DaysLeft: days})
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DaysLeft < due[j].DaysLeft
	})
	return due
}

// Summarize computes the top-level aggregate across subs. The zero value
// is returned for an empty input.
func Summarize(subs []model.Subscription, now time.Time) model.SummaryStats {
	var stats model.SummaryStats
	if len(subs) == 0 {
		return stats
	}

	for i, sub := range subs {
		monthly := sub.MonthlyCost()
		stats.Count++
		stats.TotalMonthly += monthly
		if monthly > stats.MaxMonthly {
			stats.MaxMonthly = monthly
		}

		days := DaysUntil(sub.NextPayment, now)
		if i == 0 || days < stats.SoonestDays {
			stats.SoonestDays = days
		}
	}

	stats.AvgMonthly = stats.TotalMonthly / float64(stats.Count)
	return stats
}

// CategoryTotals maps each category to the sum of monthly-equivalent costs
// of its subscriptions. Categories with no records are absent.
func CategoryTotals(subs []model.Subscription) map[model.Category]float64 {
	totals := make(map[model.Category]float64)
	for _, sub := range subs {
		totals[sub.Category] += sub.MonthlyCost()
	}
	return totals
}

// CategorySpendRanked returns category totals as a slice sorted by monthly
// spend descending, for bar rendering.
func CategorySpendRanked(subs []model.Subscription) []model.CategorySpend {
	totals := CategoryTotals(subs)

	ranked := make([]model.CategorySpend, 0, len(totals))
	for cat, monthly := range totals {
		ranked = append(ranked, model.CategorySpend{Category: cat, Monthly: monthly})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Monthly != ranked[j].Monthly {
			return ranked[i].Monthly > ranked[j].Monthly
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}
