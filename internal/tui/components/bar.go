package components

import (
	"fmt"
	"strings"

	"github.com/ibskk/subscription-tracker/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HorizontalBar renders one labeled bar scaled against maxValue.
// Used for the category spend chart on the overview tab.
func HorizontalBar(label, value string, v, maxValue float64, labelW, barW int) string {
	t := theme.Active

	barLen := 0
	if maxValue > 0 {
		barLen = int(v / maxValue * float64(barW))
	}
	if barLen > barW {
		barLen = barW
	}
	if barLen < 1 && v > 0 {
		barLen = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		barStyle.Render(strings.Repeat("█", barLen)) +
		strings.Repeat(" ", barW-barLen) + " " +
		valueStyle.Render(value)
}
