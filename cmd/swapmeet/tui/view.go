package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swapmeet/internal/market"
)

const homeMarkdown = `# Swapmeet

A community marketplace for second-hand treasures.

- **Browse** the catalog, search by name or description, filter by category
- **Sell** an item of your own, with an AI-drafted description if you want one
- **Admin** view for removing listings

Everything lives in memory for this demo; restart and the seed catalog returns.
`

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var page string
	switch m.ctrl.Page() {
	case market.PageHome:
		page = m.viewHome()
	case market.PageBrowse:
		page = m.viewBrowse()
	case market.PageSell:
		page = m.viewForm()
	case market.PageAdmin:
		page = m.viewAdmin()
	}

	if m.overlayOpen {
		page = m.viewOverlay()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.styles.Content.Render(page),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	tabs := []struct {
		page  market.Page
		label string
	}{
		{market.PageHome, "1 Home"},
		{market.PageBrowse, "2 Browse"},
		{market.PageSell, "3 Sell"},
		{market.PageAdmin, "4 Admin"},
	}

	parts := make([]string, 0, len(tabs)+1)
	parts = append(parts, "Swapmeet")
	for _, t := range tabs {
		label := t.label
		if t.page == m.ctrl.Page() {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	header := m.styles.Header.Render(strings.Join(parts, "  "))
	if m.width > 0 {
		header = lipgloss.PlaceHorizontal(m.width, lipgloss.Left, header)
	}
	return header
}

func (m Model) renderFooter() string {
	count := len(m.ctrl.Listings())
	hints := "1-4 pages • q quit"
	if m.overlayOpen {
		hints = "esc close"
	}
	return m.styles.Footer.Render(fmt.Sprintf("%d listings • %s", count, hints))
}

func (m Model) viewHome() string {
	return m.renderMarkdown(homeMarkdown)
}

// renderMarkdown renders markdown through glamour, falling back to the
// raw text if the renderer is unavailable or panics on odd input.
func (m Model) renderMarkdown(text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = text
		}
	}()

	r := (&m).markdownRenderer()
	if r == nil {
		return text
	}
	rendered, err := r.Render(text)
	if err != nil {
		return text
	}
	return rendered
}
