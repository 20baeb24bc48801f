// Package tui provides the interactive terminal interface for swapmeet.
// The interface is split across files:
//   - model.go: types, construction, Init (this file)
//   - update.go: the Update loop and key dispatch
//   - view.go: top-level rendering, header, footer, home page
//   - browse.go: browse page (search, category filter, product list)
//   - form.go: sell page (listing form, description suggestion)
//   - admin.go: admin page (table, delete confirmation)
//   - detail.go: the product detail overlay
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"swapmeet/cmd/swapmeet/ui"
	"swapmeet/internal/market"
)

// Model is the bubbletea model for the whole application. All domain
// state lives in the controller; the model only holds widget state.
type Model struct {
	ctrl   *market.Controller
	styles ui.Styles

	width  int
	height int
	ready  bool

	browse browseState
	form   formState
	admin  adminState

	// Detail overlay. The overlay remembers whether the browse search
	// field held focus so closing can restore it.
	overlayOpen      bool
	searchWasFocused bool

	spinner  spinner.Model
	renderer *glamour.TermRenderer
}

// suggestResultMsg carries the outcome of an async description call.
type suggestResultMsg struct {
	text string
	err  error
}

// New creates the application model.
func New(ctrl *market.Controller) Model {
	styles := ui.DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Badge

	return Model{
		ctrl:    ctrl,
		styles:  styles,
		browse:  newBrowseState(styles),
		form:    newFormState(styles),
		admin:   newAdminState(styles),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
