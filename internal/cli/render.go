package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorMuted  = lipgloss.Color("#878580")
	ColorDim    = lipgloss.Color("#575653")
	ColorBorder = lipgloss.Color("#403E3C")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorOrange = lipgloss.Color("#DA702C")
	ColorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorDim)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorOrange)
	okStyle     = lipgloss.NewStyle().Foreground(ColorGreen)
)

// Warn renders a due-soon warning line.
func Warn(s string) string {
	return warnStyle.Render(s)
}

// OK renders a success confirmation line.
func OK(s string) string {
	return okStyle.Render(s)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row of the single cell "---" draws a separator line.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Right-align all but the first column
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderHorizontalBar renders one labeled bar of a horizontal bar chart.
// The bar length scales value against maxValue over maxWidth cells.
func RenderHorizontalBar(label, value string, v, maxValue float64, labelW, maxWidth int) string {
	barLen := 0
	if maxValue > 0 {
		barLen = int(v / maxValue * float64(maxWidth))
	}
	if barLen < 0 {
		barLen = 0
	}
	if barLen == 0 && v > 0 {
		barLen = 1
	}

	bar := lipgloss.NewStyle().Foreground(ColorAccent).Render(strings.Repeat("█", barLen))
	pad := strings.Repeat(" ", maxWidth-barLen)
	return fmt.Sprintf("  %-*s %s%s  %s", labelW, label, bar, pad, valueStyle.Render(value))
}
