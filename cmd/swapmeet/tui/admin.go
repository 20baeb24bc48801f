package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"swapmeet/cmd/swapmeet/ui"
	"swapmeet/internal/catalog"
)

// adminState holds the admin page: the listing table and the pending
// delete confirmation, which are mutually exclusive input modes.
type adminState struct {
	table table.Model

	// Non-empty while a delete awaits confirmation.
	pendingDeleteID   string
	pendingDeleteName string
	statusText        string
}

func newAdminState(styles ui.Styles) adminState {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Price", Width: 10},
		{Title: "Seller", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(styles.Card.GetBorderStyle()).
		BorderForeground(styles.Theme.Border).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(styles.Theme.Background).
		Background(styles.Theme.Accent).
		Bold(true)
	t.SetStyles(ts)

	return adminState{table: t}
}

// refresh rebuilds the table rows from the catalog snapshot, keeping
// the cursor in range.
func (a *adminState) refresh(products []catalog.Product) {
	rows := make([]table.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, table.Row{p.Name, p.Category, fmt.Sprintf("R %.2f", p.Price), p.Seller})
	}
	a.table.SetRows(rows)
	if cursor := a.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		a.table.SetCursor(len(rows) - 1)
	}
}

// updateAdminKeys handles key input on the admin page.
func (m *Model) updateAdminKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	listings := m.ctrl.Listings()

	// Confirmation mode swallows everything except the verdict keys.
	if m.admin.pendingDeleteID != "" {
		switch msg.String() {
		case "y", "Y", "enter":
			name := m.admin.pendingDeleteName
			if m.ctrl.DeleteListing(m.admin.pendingDeleteID) {
				m.admin.statusText = fmt.Sprintf("Deleted %q.", name)
			} else {
				m.admin.statusText = fmt.Sprintf("%q was already gone.", name)
			}
			m.admin.pendingDeleteID = ""
			m.admin.pendingDeleteName = ""
			m.admin.refresh(m.ctrl.Listings())
			m.browse.rebuildCategories(m.ctrl.Listings())
		case "n", "N", "esc":
			m.admin.pendingDeleteID = ""
			m.admin.pendingDeleteName = ""
			m.admin.statusText = ""
		}
		return nil, true
	}

	switch msg.String() {
	case "d", "delete", "backspace":
		if len(listings) == 0 {
			return nil, true
		}
		cursor := m.admin.table.Cursor()
		if cursor < 0 || cursor >= len(listings) {
			return nil, true
		}
		m.admin.pendingDeleteID = listings[cursor].ID
		m.admin.pendingDeleteName = listings[cursor].Name
		m.admin.statusText = ""
		return nil, true
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		m.admin.table, cmd = m.admin.table.Update(msg)
		return cmd, true
	}
	return nil, false
}

func (m Model) viewAdmin() string {
	listings := m.ctrl.Listings()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Admin: Manage Listings"))
	sb.WriteString("\n")

	if len(listings) == 0 {
		sb.WriteString(m.styles.Muted.Render("No products to manage."))
		return sb.String()
	}

	sb.WriteString(m.admin.table.View())
	sb.WriteString("\n\n")

	if m.admin.pendingDeleteID != "" {
		prompt := fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone. (y/n)", m.admin.pendingDeleteName)
		sb.WriteString(m.styles.Warning.Render(prompt))
		sb.WriteString("\n")
	} else {
		if m.admin.statusText != "" {
			sb.WriteString(m.styles.Success.Render(m.admin.statusText))
			sb.WriteString("\n")
		}
		sb.WriteString(m.styles.Muted.Render("d delete selected listing"))
	}
	return sb.String()
}
