// Package tui provides the interactive Bubble Tea dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/ibskk/subscription-tracker/internal/model"
	"github.com/ibskk/subscription-tracker/internal/store"
	"github.com/ibskk/subscription-tracker/internal/tui/components"
	"github.com/ibskk/subscription-tracker/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// storeReadyMsg is sent when the subscription store has been opened.
type storeReadyMsg struct {
	st  *store.Store
	err error
}

// subsLoadedMsg is sent whenever the record set has been re-read.
type subsLoadedMsg struct {
	subs  []model.Subscription
	count int
	err   error
}

// mutationMsg reports the outcome of an add or delete.
type mutationMsg struct {
	notice string
	err    error
}

// App is the root Bubble Tea model.
type App struct {
	dbPath         string
	dueSoonDays    int
	upcomingWindow int

	st       *store.Store
	subs     []model.Subscription
	subCount int
	loaded   bool
	errMsg   string
	notice   string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Subscriptions tab
	cursor        int
	searching     bool
	searchInput   textinput.Model
	searchQuery   string
	confirmDelete bool

	// Add form (huh)
	addForm *huh.Form
	addVals addValues
	adding  bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5
)

// NewApp creates the dashboard model. The store is opened asynchronously
// during Init so a broken database surfaces as an on-screen error.
func NewApp(dbPath string, dueSoonDays, upcomingWindow int) App {
	if dueSoonDays <= 0 {
		dueSoonDays = 7
	}
	if upcomingWindow <= 0 {
		upcomingWindow = 7
	}
	return App{
		dbPath:         dbPath,
		dueSoonDays:    dueSoonDays,
		upcomingWindow: upcomingWindow,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return openStoreCmd(a.dbPath)
}

func openStoreCmd(path string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(path)
		return storeReadyMsg{st: st, err: err}
	}
}

func loadSubsCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		subs, err := st.ListAll()
		if err != nil {
			return subsLoadedMsg{err: err}
		}
		count, err := st.Count()
		if err != nil {
			return subsLoadedMsg{err: err}
		}
		return subsLoadedMsg{subs: subs, count: count}
	}
}

func upsertCmd(st *store.Store, sub model.Subscription) tea.Cmd {
	return func() tea.Msg {
		if err := st.Upsert(sub); err != nil {
			return mutationMsg{err: err}
		}
		return mutationMsg{notice: fmt.Sprintf("Subscription added: %s", sub.Name)}
	}
}

func deleteCmd(st *store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		if err := st.Delete(name); err != nil {
			return mutationMsg{err: err}
		}
		return mutationMsg{notice: fmt.Sprintf("Removed %q", name)}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.formWidth())
		}
		return a, nil

	case storeReadyMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			a.loaded = true
			return a, nil
		}
		a.st = msg.st
		return a, loadSubsCmd(a.st)

	case subsLoadedMsg:
		a.loaded = true
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.errMsg = ""
		a.subs = msg.subs
		a.subCount = msg.count
		a.clampCursor()
		return a, nil

	case mutationMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
		} else {
			a.notice = msg.notice
		}
		// Always re-read the store so the listing reflects the new state.
		return a, loadSubsCmd(a.st)

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	// Forward unhandled messages to the add form (cursor blinks, etc.)
	if a.adding && a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.searching {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, a.quit()
	}

	if !a.loaded || a.st == nil {
		if key == "q" {
			return a, a.quit()
		}
		return a, nil
	}

	// Add form intercepts all keys while open
	if a.adding && a.addForm != nil {
		return a.updateAddForm(msg)
	}

	// Search mode intercepts all keys while typing
	if a.searching {
		return a.updateSearch(msg)
	}

	// Delete confirmation
	if a.confirmDelete {
		a.confirmDelete = false
		if key == "y" {
			visible := a.visibleSubs()
			if a.cursor < len(visible) {
				return a, deleteCmd(a.st, visible[a.cursor].Name)
			}
		}
		return a, nil
	}

	// Help toggle / dismiss
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, a.quit()

	case "a":
		a.notice = ""
		a.adding = true
		a.addVals = newAddValues()
		a.addForm = newAddForm(&a.addVals).WithWidth(a.formWidth())
		return a, a.addForm.Init()

	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}

	// Subscriptions tab keybindings
	if a.activeTab == 1 {
		visible := a.visibleSubs()
		switch key {
		case "/":
			a.searching = true
			a.searchInput = newSearchInput()
			a.searchInput.Focus()
			return a, textinput.Blink
		case "esc":
			if a.searchQuery != "" {
				a.searchQuery = ""
				a.cursor = 0
			}
			return a, nil
		case "j", "down":
			if a.cursor < len(visible)-1 {
				a.cursor++
			}
			return a, nil
		case "k", "up":
			if a.cursor > 0 {
				a.cursor--
			}
			return a, nil
		case "g":
			a.cursor = 0
			return a, nil
		case "G":
			a.cursor = len(visible) - 1
			if a.cursor < 0 {
				a.cursor = 0
			}
			return a, nil
		case "d":
			if len(visible) > 0 {
				a.confirmDelete = true
			}
			return a, nil
		}
	}

	return a, nil
}

func (a *App) quit() tea.Cmd {
	if a.st != nil {
		_ = a.st.Close()
	}
	return tea.Quit
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.searchQuery = strings.TrimSpace(a.searchInput.Value())
		a.searching = false
		a.cursor = 0
		return a, nil
	case "esc":
		a.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name or category..."
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// visibleSubs returns the record set filtered by the current search query.
func (a App) visibleSubs() []model.Subscription {
	if a.searchQuery == "" {
		return a.subs
	}
	q := strings.ToLower(a.searchQuery)
	var out []model.Subscription
	for _, sub := range a.subs {
		if strings.Contains(strings.ToLower(sub.Name), q) ||
			strings.Contains(strings.ToLower(string(sub.Category)), q) {
			out = append(out, sub)
		}
	}
	return out
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.subs) {
		a.cursor = len(a.subs) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) formWidth() int {
	w := a.contentWidth() - 4
	if w < 40 {
		w = 40
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}

	if !a.loaded {
		return "\n  Opening subscription store..."
	}

	if a.adding && a.addForm != nil {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.addForm.View())
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab)
	statusBar := components.RenderStatusBar(w, a.subCount)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderSubscriptionsTab(cw, contentH)
	}

	// Transient notice / error line below the tab content
	if a.errMsg != "" {
		content += "\n " + lipgloss.NewStyle().Foreground(t.Red).Render(a.errMsg)
	} else if a.notice != "" {
		content += "\n " + lipgloss.NewStyle().Foreground(t.Green).Render(a.notice)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"o s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate subscriptions"},
		{"a", "Add subscription"},
		{"d", "Delete selected (y to confirm)"},
		{"/", "Search subscriptions"},
		{"Esc", "Clear search"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
