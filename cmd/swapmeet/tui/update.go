package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"swapmeet/internal/market"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.renderer = nil // rebuilt lazily at the new width
		return m, nil

	case suggestResultMsg:
		m.applySuggestion(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Suggesting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, whatever owns the keyboard.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.overlayOpen {
		cmd, _ := m.updateOverlayKeys(msg)
		return m, cmd
	}

	// Page-local handling first; a focused widget must see plain keys
	// before global navigation does.
	var cmd tea.Cmd
	var consumed bool
	switch m.ctrl.Page() {
	case market.PageBrowse:
		cmd, consumed = m.updateBrowseKeys(msg)
	case market.PageSell:
		cmd, consumed = m.updateFormKeys(msg)
	case market.PageAdmin:
		cmd, consumed = m.updateAdminKeys(msg)
	}
	if consumed {
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1", "h":
		m.navigate(market.PageHome)
	case "2", "b":
		m.navigate(market.PageBrowse)
	case "3", "s":
		m.navigate(market.PageSell)
	case "4", "a":
		m.navigate(market.PageAdmin)
	}
	return m, nil
}

// navigate switches pages and runs the page entry hooks: the sell form
// resets, the browse filters and admin table pick up catalog changes.
func (m *Model) navigate(p market.Page) {
	if p == m.ctrl.Page() {
		return
	}
	m.ctrl.Navigate(p)

	switch p {
	case market.PageBrowse:
		m.browse.rebuildCategories(m.ctrl.Listings())
		m.browse.clampCursor(len(m.browse.visible(m.ctrl.Listings())))
	case market.PageSell:
		m.form.reset()
	case market.PageAdmin:
		m.admin.refresh(m.ctrl.Listings())
		m.admin.pendingDeleteID = ""
		m.admin.pendingDeleteName = ""
		m.admin.statusText = ""
	}
}

// markdownRenderer returns the glamour renderer for the home page,
// creating it at the current width on first use.
func (m *Model) markdownRenderer() *glamour.TermRenderer {
	if m.renderer != nil {
		return m.renderer
	}
	width := m.width - 4
	if width < 20 || width > 100 {
		width = 80
	}
	style := glamour.WithStandardStyle("dark")
	if !m.styles.Theme.IsDark {
		style = glamour.WithStandardStyle("light")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	m.renderer = r
	return r
}
