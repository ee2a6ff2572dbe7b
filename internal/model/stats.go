package model

// SummaryStats holds the top-level aggregate across all subscriptions.
type SummaryStats struct {
	Count        int
	TotalMonthly float64
	AvgMonthly   float64
	MaxMonthly   float64
	SoonestDays  int // days until the nearest payment; negative if overdue
}

// CategorySpend holds the monthly-equivalent spend for one category.
type CategorySpend struct {
	Category Category
	Monthly  float64
}

// UpcomingPayment pairs a subscription with its days-remaining count.
type UpcomingPayment struct {
	Subscription
	DaysLeft int
}
