package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ibskk/subscription-tracker/internal/cli"
	"github.com/ibskk/subscription-tracker/internal/model"
	"github.com/ibskk/subscription-tracker/internal/tracker"
	"github.com/ibskk/subscription-tracker/internal/tui/components"
	"github.com/ibskk/subscription-tracker/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// cardLines is the rendered height of one subscription card (3 content
// lines + 2 border lines), used for scroll math.
const cardLines = 5

func (a App) renderSubscriptionsTab(cw, contentH int) string {
	t := theme.Active
	visible := a.visibleSubs()

	var b strings.Builder

	// Search line
	if a.searching {
		b.WriteString(" / " + a.searchInput.View())
		b.WriteString("\n")
	} else if a.searchQuery != "" {
		filterStyle := lipgloss.NewStyle().Foreground(t.Accent)
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		b.WriteString(fmt.Sprintf(" %s %s  %s\n",
			dim.Render("filter:"), filterStyle.Render(a.searchQuery),
			dim.Render("[esc] clear")))
	}

	if len(visible) == 0 {
		msg := "No subscriptions added yet.\nPress [a] to add one."
		if a.searchQuery != "" {
			msg = fmt.Sprintf("Nothing matches %q.", a.searchQuery)
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard("",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(msg), cw))
		return b.String()
	}

	// Scroll: keep the cursor's card inside the content area
	headerLines := lipgloss.Height(b.String())
	perScreen := (contentH - headerLines - 1) / cardLines
	if perScreen < 1 {
		perScreen = 1
	}
	offset := 0
	if a.cursor >= perScreen {
		offset = a.cursor - perScreen + 1
	}

	now := time.Now()
	for i := offset; i < len(visible) && i < offset+perScreen; i++ {
		b.WriteString(a.renderSubCard(visible[i], i == a.cursor, now, cw))
		b.WriteString("\n")
	}

	if a.confirmDelete && a.cursor < len(visible) {
		confirm := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		b.WriteString(confirm.Render(fmt.Sprintf(" Delete %q? [y/n]", visible[a.cursor].Name)))
	}

	return b.String()
}

func (a App) renderSubCard(sub model.Subscription, selected bool, now time.Time, cw int) string {
	t := theme.Active

	borderColor := t.Border
	if selected {
		borderColor = t.BorderAccent
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(cw - 2).
		Padding(0, 1)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)

	days := tracker.DaysUntil(sub.NextPayment, now)

	var due string
	if tracker.IsDueSoon(sub.NextPayment, now, a.dueSoonDays) {
		due = warnStyle.Render(fmt.Sprintf("Payment due %s", cli.FormatDays(days)))
	} else {
		due = metaStyle.Render(fmt.Sprintf("Next payment %s", cli.FormatDays(days)))
	}

	content := nameStyle.Render(sub.Name) + "\n" +
		metaStyle.Render(fmt.Sprintf("Cost: %s  •  Category: %s  •  %s",
			cli.FormatCost(sub.Amount, sub.Cycle), sub.Category, cli.FormatDate(sub.NextPayment))) + "\n" +
		due

	return cardStyle.Render(content)
}
