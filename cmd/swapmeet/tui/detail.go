package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateOverlayKeys handles key input while the detail overlay is open.
// The overlay is modal: it consumes every key.
func (m *Model) updateOverlayKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.closeOverlay()
	}
	return nil, true
}

func (m *Model) closeOverlay() {
	m.overlayOpen = false
	m.ctrl.ClearSelection()
	if m.searchWasFocused {
		m.browse.search.Focus()
		m.searchWasFocused = false
	}
}

// viewOverlay renders the product detail card. Every slot is rendered
// even when the backing field is short; the card keeps a stable shape.
func (m Model) viewOverlay() string {
	p, ok := m.ctrl.Selected()
	if !ok {
		// The listing vanished under the overlay, deleted elsewhere.
		return m.styles.Overlay.Render(m.styles.Muted.Render("This listing is no longer available."))
	}

	category := p.Category
	if category == "" {
		category = "Uncategorized"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(p.Name),
		m.styles.Muted.Render(p.Image()),
		"",
		p.Description,
		"",
		m.styles.Price.Render(fmt.Sprintf("R %.2f", p.Price)),
		m.styles.Muted.Render("Seller: "+p.Seller),
		m.styles.Badge.Render(category),
		"",
		m.styles.Muted.Render("esc close"),
	)
	return m.styles.Overlay.Render(body)
}
