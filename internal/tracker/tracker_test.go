package tracker

import (
	"math"
	"testing"
	"time"

	"github.com/ibskk/subscription-tracker/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

var testNow = time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-08-31", 0},
		{"2026-09-07", 7},
		{"2026-08-28", -3},
		{"2026-09-01", 1},
		{"2025-08-31", -365},
	}

	for _, tt := range tests {
		if got := DaysUntil(mustDate(t, tt.date), testNow); got != tt.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// Late evening vs early morning must not shift the whole-day count.
	lateNow := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	if got := DaysUntil(mustDate(t, "2026-09-01"), lateNow); got != 1 {
		t.Fatalf("DaysUntil near midnight = %d, want 1", got)
	}
}

func TestIsDueSoon(t *testing.T) {
	// Overdue dates also count as due soon: the predicate is a plain
	// <= threshold on the day count, with no lower bound.
	tests := []struct {
		days int
		want bool
	}{
		{-100, true},
		{0, true},
		{3, true},
		{7, true},
		{8, false},
	}

	for _, tt := range tests {
		date := testNow.AddDate(0, 0, tt.days)
		if got := IsDueSoon(date, testNow, 7); got != tt.want {
			t.Errorf("IsDueSoon(%+d days) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func sub(name string, amount float64, cycle model.BillingCycle, cat model.Category, daysOut int) model.Subscription {
	return model.Subscription{
		Name:        name,
		Amount:      amount,
		Cycle:       cycle,
		Category:    cat,
		NextPayment: testNow.AddDate(0, 0, daysOut),
	}
}

func TestUpcomingWindowAndOrder(t *testing.T) {
	subs := []model.Subscription{
		sub("a", 10, model.CycleMonthly, model.CategoryOther, 7),
		sub("b", 10, model.CycleMonthly, model.CategoryOther, 8),
		sub("c", 10, model.CycleMonthly, model.CategoryOther, 3),
		sub("d", 10, model.CycleMonthly, model.CategoryOther, -1),
		sub("e", 10, model.CycleMonthly, model.CategoryOther, 0),
	}

	due := Upcoming(subs, testNow, 7)

	var names []string
	for _, up := range due {
		names = append(names, up.Name)
	}

	want := []string{"e", "c", "a"}
	if len(names) != len(want) {
		t.Fatalf("Upcoming returned %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Upcoming order = %v, want %v", names, want)
		}
	}
}

func TestUpcomingStableOnTies(t *testing.T) {
	subs := []model.Subscription{
		sub("first", 1, model.CycleMonthly, model.CategoryOther, 2),
		sub("second", 2, model.CycleMonthly, model.CategoryOther, 2),
	}

	due := Upcoming(subs, testNow, 7)
	if len(due) != 2 || due[0].Name != "first" || due[1].Name != "second" {
		t.Fatalf("tie order broken: %+v", due)
	}
}

func TestSummarizeSingleRecord(t *testing.T) {
	subs := []model.Subscription{
		sub("one", 10, model.CycleMonthly, model.CategorySaaS, 2),
	}

	stats := Summarize(subs, testNow)
	if stats.Count != 1 {
		t.Fatalf("Count = %d, want 1", stats.Count)
	}
	if stats.AvgMonthly != 10 {
		t.Fatalf("AvgMonthly = %.2f, want 10.00", stats.AvgMonthly)
	}
	if stats.MaxMonthly != 10 {
		t.Fatalf("MaxMonthly = %.2f, want 10.00", stats.MaxMonthly)
	}
	if stats.SoonestDays != 2 {
		t.Fatalf("SoonestDays = %d, want 2", stats.SoonestDays)
	}
}

func TestSummarizeMixedCycles(t *testing.T) {
	subs := []model.Subscription{
		sub("yearly", 120, model.CycleYearly, model.CategorySaaS, 30), // 10/mo
		sub("monthly", 30, model.CycleMonthly, model.CategoryStreaming, -4),
	}

	stats := Summarize(subs, testNow)
	if stats.Count != 2 {
		t.Fatalf("Count = %d, want 2", stats.Count)
	}
	if math.Abs(stats.TotalMonthly-40) > 1e-9 {
		t.Fatalf("TotalMonthly = %.2f, want 40.00", stats.TotalMonthly)
	}
	if math.Abs(stats.AvgMonthly-20) > 1e-9 {
		t.Fatalf("AvgMonthly = %.2f, want 20.00", stats.AvgMonthly)
	}
	if stats.MaxMonthly != 30 {
		t.Fatalf("MaxMonthly = %.2f, want 30.00", stats.MaxMonthly)
	}
	// Soonest payment may be negative when something is overdue.
	if stats.SoonestDays != -4 {
		t.Fatalf("SoonestDays = %d, want -4", stats.SoonestDays)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil, testNow)
	if stats != (model.SummaryStats{}) {
		t.Fatalf("empty Summarize = %+v, want zero value", stats)
	}
}

func TestCategoryTotals(t *testing.T) {
	subs := []model.Subscription{
		sub("y", 12, model.CycleYearly, model.CategorySaaS, 10),
		sub("m", 5, model.CycleMonthly, model.CategorySaaS, 10),
	}

	totals := CategoryTotals(subs)
	if len(totals) != 1 {
		t.Fatalf("got %d categories, want 1 (absent categories must be omitted)", len(totals))
	}
	if math.Abs(totals[model.CategorySaaS]-6) > 1e-9 {
		t.Fatalf("SaaS total = %.2f, want 6.00 (12/12 + 5)", totals[model.CategorySaaS])
	}
}

func TestCategorySpendRanked(t *testing.T) {
	subs := []model.Subscription{
		sub("gym", 20, model.CycleMonthly, model.CategoryFitness, 1),
		sub("tv", 50, model.CycleMonthly, model.CategoryStreaming, 1),
		sub("bank", 20, model.CycleMonthly, model.CategoryFinance, 1),
	}

	ranked := CategorySpendRanked(subs)
	if len(ranked) != 3 {
		t.Fatalf("got %d entries, want 3", len(ranked))
	}
	if ranked[0].Category != model.CategoryStreaming {
		t.Fatalf("top category = %s, want Streaming", ranked[0].Category)
	}
	// Equal spend breaks ties by category name for a stable chart.
	if ranked[1].Category != model.CategoryFinance || ranked[2].Category != model.CategoryFitness {
		t.Fatalf("tie order = %s, %s; want Finance, Fitness", ranked[1].Category, ranked[2].Category)
	}
}
