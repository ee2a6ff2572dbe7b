package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ibskk/subscription-tracker/internal/cli"
	"github.com/ibskk/subscription-tracker/internal/tracker"
	"github.com/ibskk/subscription-tracker/internal/tui/components"
	"github.com/ibskk/subscription-tracker/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	if len(a.subs) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No subscriptions added yet.\nPress [a] to add your first one.")
		return "\n" + components.ContentCard("", empty, cw)
	}

	now := time.Now()
	stats := tracker.Summarize(a.subs, now)

	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Note string }{
		{"Subscriptions", fmt.Sprintf("%d", stats.Count), ""},
		{"Avg Monthly Cost", cli.FormatMoney(stats.AvgMonthly), ""},
		{"Highest", cli.FormatMoney(stats.MaxMonthly), ""},
		{"Next Payment", fmt.Sprintf("%d days", stats.SoonestDays), cli.FormatDays(stats.SoonestDays)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Category spend bars + total
	ranked := tracker.CategorySpendRanked(a.subs)
	innerW := components.CardInnerWidth(cw)

	labelW := 0
	for _, cs := range ranked {
		if len(cs.Category) > labelW {
			labelW = len(cs.Category)
		}
	}
	barW := innerW - labelW - 12
	if barW < 10 {
		barW = 10
	}
	if barW > 40 {
		barW = 40
	}

	var bars strings.Builder
	maxSpend := ranked[0].Monthly
	for i, cs := range ranked {
		if i > 0 {
			bars.WriteString("\n")
		}
		bars.WriteString(components.HorizontalBar(
			string(cs.Category), cli.FormatMoney(cs.Monthly),
			cs.Monthly, maxSpend, labelW, barW))
	}
	bars.WriteString("\n")
	bars.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(fmt.Sprintf("Total Monthly Spend: %s", cli.FormatMoney(stats.TotalMonthly))))

	b.WriteString(components.ContentCard("Monthly Spend by Category", bars.String(), cw))
	b.WriteString("\n")

	// Row 3: Upcoming payments
	due := tracker.Upcoming(a.subs, now, a.upcomingWindow)
	var upBody string
	if len(due) == 0 {
		upBody = lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("No payments due in the next %d days.", a.upcomingWindow))
	} else {
		warn := lipgloss.NewStyle().Foreground(t.Orange)
		lines := make([]string, 0, len(due))
		for _, up := range due {
			lines = append(lines, warn.Render(fmt.Sprintf("%s • %s • %s • due %s",
				up.Name, cli.FormatCost(up.Amount, up.Cycle), up.Category, cli.FormatDays(up.DaysLeft))))
		}
		upBody = strings.Join(lines, "\n")
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Upcoming Payments (Next %d Days)", a.upcomingWindow), upBody, cw))

	return b.String()
}
