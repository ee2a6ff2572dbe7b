package components

import (
	"fmt"

	"github.com/ibskk/subscription-tracker/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width, subCount int) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [a]dd  [d]elete  [/]search  [?]help  [q]uit"
	right := fmt.Sprintf("%d subscriptions ", subCount)
	if subCount == 1 {
		right = "1 subscription "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
