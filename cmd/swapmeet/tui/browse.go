package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"swapmeet/cmd/swapmeet/ui"
	"swapmeet/internal/catalog"
)

// allCategories is the sentinel shown before the derived category list.
const allCategories = "All Categories"

// browseState holds the widget state for the browse page.
type browseState struct {
	search     textinput.Model
	categories []string // derived options, sentinel first
	categoryIx int
	cursor     int
}

func newBrowseState(styles ui.Styles) browseState {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Prompt = "/ "
	search.PromptStyle = styles.Bold
	search.CharLimit = 80
	search.Width = 40

	return browseState{
		search:     search,
		categories: []string{allCategories},
	}
}

// rebuildCategories recomputes the category options from the catalog,
// preserving the current selection when it still exists.
func (b *browseState) rebuildCategories(products []catalog.Product) {
	current := b.selectedCategory()

	b.categories = append([]string{allCategories}, catalog.Categories(products)...)
	b.categoryIx = 0
	for i, c := range b.categories {
		if c == current {
			b.categoryIx = i
			break
		}
	}
}

// selectedCategory returns the active filter, empty for the sentinel.
func (b *browseState) selectedCategory() string {
	if b.categoryIx <= 0 || b.categoryIx >= len(b.categories) {
		return ""
	}
	return b.categories[b.categoryIx]
}

func (b *browseState) cycleCategory() {
	if len(b.categories) == 0 {
		return
	}
	b.categoryIx = (b.categoryIx + 1) % len(b.categories)
	b.cursor = 0
}

// visible returns the filtered product list for the current term and
// category.
func (b *browseState) visible(products []catalog.Product) []catalog.Product {
	return catalog.Filter(products, b.search.Value(), b.selectedCategory())
}

func (b *browseState) clampCursor(n int) {
	if b.cursor >= n {
		b.cursor = n - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

// updateBrowseKeys handles key input on the browse page. Returns the
// commands to run and whether the key was consumed.
func (m *Model) updateBrowseKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.browse.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.browse.search.Blur()
			return nil, true
		case tea.KeyEnter:
			// Open the top match; closing the overlay hands focus back
			// to the search box.
			visible := m.browse.visible(m.ctrl.Listings())
			if len(visible) == 0 {
				return nil, true
			}
			m.browse.clampCursor(len(visible))
			if err := m.ctrl.Select(visible[m.browse.cursor].ID); err == nil {
				m.browse.search.Blur()
				m.searchWasFocused = true
				m.overlayOpen = true
			}
			return nil, true
		}
		var cmd tea.Cmd
		m.browse.search, cmd = m.browse.search.Update(msg)
		m.browse.cursor = 0
		return cmd, true
	}

	listings := m.ctrl.Listings()
	visible := m.browse.visible(listings)

	switch msg.String() {
	case "/":
		m.browse.search.Focus()
		return textinput.Blink, true
	case "c":
		m.browse.rebuildCategories(listings)
		m.browse.cycleCategory()
		return nil, true
	case "up", "k":
		m.browse.cursor--
		m.browse.clampCursor(len(visible))
		return nil, true
	case "down", "j":
		m.browse.cursor++
		m.browse.clampCursor(len(visible))
		return nil, true
	case "enter", " ":
		if len(visible) == 0 {
			return nil, true
		}
		m.browse.clampCursor(len(visible))
		if err := m.ctrl.Select(visible[m.browse.cursor].ID); err == nil {
			m.searchWasFocused = false
			m.overlayOpen = true
		}
		return nil, true
	}
	return nil, false
}

func (m Model) viewBrowse() string {
	listings := m.ctrl.Listings()
	visible := m.browse.visible(listings)

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Browse Products"))
	sb.WriteString("\n")

	// Filter bar: search box plus current category.
	category := m.browse.selectedCategory()
	if category == "" {
		category = allCategories
	}
	filterBar := lipgloss.JoinHorizontal(lipgloss.Center,
		m.browse.search.View(),
		"  ",
		m.styles.Badge.Render(category),
		m.styles.Muted.Render("  (c to change)"),
	)
	sb.WriteString(filterBar)
	sb.WriteString("\n\n")

	if len(visible) == 0 {
		// The empty catalog and the over-filtered catalog read
		// differently; neither is an error.
		if len(listings) == 0 {
			sb.WriteString(m.styles.Muted.Render("No products listed yet. Be the first to sell!"))
		} else {
			sb.WriteString(m.styles.Muted.Render("No products match your current filters. Try adjusting your search!"))
		}
		return sb.String()
	}

	for i, p := range visible {
		card := m.renderProductCard(p)
		if i == m.browse.cursor && !m.browse.search.Focused() {
			sb.WriteString(m.styles.Selected.Render(card))
		} else {
			sb.WriteString(m.styles.Card.Render(card))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderProductCard(p catalog.Product) string {
	description := p.Description
	if len(description) > 60 {
		description = description[:60] + "..."
	}
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Bold.Render(p.Name),
		"  ",
		m.styles.Muted.Render(strings.ToUpper(p.Category)),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		description,
		m.styles.Price.Render(fmt.Sprintf("R %.2f", p.Price)),
	)
}
