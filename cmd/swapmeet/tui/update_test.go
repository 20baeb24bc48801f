package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapmeet/internal/catalog"
	"swapmeet/internal/market"
	"swapmeet/internal/suggest"
)

type stubSuggester struct {
	text string
	err  error
}

func (s *stubSuggester) Suggest(context.Context, string, string) (string, error) {
	return s.text, s.err
}

func newTestModel(t *testing.T, s market.Suggester) Model {
	t.Helper()
	if s == nil {
		s = &stubSuggester{text: "A fine item."}
	}
	ctrl := market.NewController(catalog.NewSeededStore(), s, "")
	m := New(ctrl)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_NavigationKeys(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, market.PageHome, m.ctrl.Page())

	m = press(t, m, keyRune('b'))
	assert.Equal(t, market.PageBrowse, m.ctrl.Page())

	m = press(t, m, keyRune('a'))
	assert.Equal(t, market.PageAdmin, m.ctrl.Page())

	m = press(t, m, keyRune('s'))
	assert.Equal(t, market.PageSell, m.ctrl.Page())

	// The focused name field owns plain keys; blur it before jumping.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, keyRune('1'))
	assert.Equal(t, market.PageHome, m.ctrl.Page())
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_SellEntryResetsForm(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, keyRune('s'))
	m.form.inputs[fieldName].SetValue("Leftover draft")
	m.form.errText = "old error"

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, keyRune('b'))
	m = press(t, m, keyRune('s'))

	assert.Empty(t, m.form.inputs[fieldName].Value())
	assert.Empty(t, m.form.errText)
	assert.True(t, m.form.inputs[fieldName].Focused(), "name field regains focus on entry")
}

func TestModel_BrowseSearchCapturesNavKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyRune('b'))

	m = press(t, m, keyRune('/'))
	require.True(t, m.browse.search.Focused())

	// 'a' is typed into the search box, not an admin jump.
	m = press(t, m, keyRune('a'))
	assert.Equal(t, market.PageBrowse, m.ctrl.Page())
	assert.Equal(t, "a", m.browse.search.Value())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.browse.search.Focused())
}

func TestModel_CategoryCycle(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyRune('b'))

	assert.Empty(t, m.browse.selectedCategory(), "starts on the all-categories sentinel")

	m = press(t, m, keyRune('c'))
	first := m.browse.selectedCategory()
	assert.NotEmpty(t, first)

	// Cycling through every category returns to the sentinel.
	for i := 0; i < len(m.browse.categories)-1; i++ {
		m = press(t, m, keyRune('c'))
	}
	assert.Empty(t, m.browse.selectedCategory())
}

func TestModel_DetailOverlayLifecycle(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyRune('b'))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.overlayOpen)
	_, ok := m.ctrl.Selected()
	require.True(t, ok)

	// Navigation keys are inert while the overlay is modal.
	m = press(t, m, keyRune('a'))
	assert.Equal(t, market.PageBrowse, m.ctrl.Page())
	assert.True(t, m.overlayOpen)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.overlayOpen)
	_, ok = m.ctrl.Selected()
	assert.False(t, ok, "closing the overlay clears the selection")
}

func TestModel_OverlayRestoresSearchFocus(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyRune('b'))

	m = press(t, m, keyRune('/'))
	require.True(t, m.browse.search.Focused())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.overlayOpen)
	assert.False(t, m.browse.search.Focused())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.overlayOpen)
	assert.True(t, m.browse.search.Focused(), "focus returns to where it was before the overlay")
}

func TestModel_AdminDeleteConfirmFlow(t *testing.T) {
	m := newTestModel(t, nil)
	before := len(m.ctrl.Listings())
	m = press(t, m, keyRune('a'))

	m = press(t, m, keyRune('d'))
	require.NotEmpty(t, m.admin.pendingDeleteID)

	// Declining leaves the catalog alone.
	m = press(t, m, keyRune('n'))
	assert.Empty(t, m.admin.pendingDeleteID)
	assert.Equal(t, before, len(m.ctrl.Listings()))

	// Confirming removes the selected listing.
	m = press(t, m, keyRune('d'))
	m = press(t, m, keyRune('y'))
	assert.Empty(t, m.admin.pendingDeleteID)
	assert.Equal(t, before-1, len(m.ctrl.Listings()))
}

func TestModel_SuggestionGuardMessage(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyRune('s'))

	cmd := m.startSuggestion()
	assert.Nil(t, cmd)
	assert.Equal(t, market.MsgSuggestNeedsInput, m.form.errText)
	assert.False(t, m.ctrl.Suggesting())
}

func TestModel_SuggestionResultPopulatesDescription(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyRune('s'))
	m.form.inputs[fieldName].SetValue("Desk Lamp")

	cmd := m.startSuggestion()
	require.NotNil(t, cmd)
	require.True(t, m.ctrl.Suggesting())

	m.applySuggestion(suggestResultMsg{text: "A warm brass lamp."})
	assert.False(t, m.ctrl.Suggesting(), "the trigger re-arms after the result")
	assert.Equal(t, "A warm brass lamp.", m.form.description.Value())
	assert.Empty(t, m.form.errText)
}

func TestModel_SuggestionFailureShowsMappedMessage(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyRune('s'))
	m.form.inputs[fieldName].SetValue("Desk Lamp")

	require.NotNil(t, m.startSuggestion())

	m.applySuggestion(suggestResultMsg{err: &suggest.Error{Kind: suggest.KindConfiguration}})
	assert.Equal(t, market.MsgSuggestNotConfigured, m.form.errText)
	assert.False(t, m.ctrl.Suggesting())

	require.NotNil(t, m.startSuggestion())
	m.applySuggestion(suggestResultMsg{err: errors.New("timeout")})
	assert.Equal(t, market.MsgSuggestTryAgain, m.form.errText)
}

func TestModel_SubmitListingFromForm(t *testing.T) {
	m := newTestModel(t, nil)
	before := len(m.ctrl.Listings())
	m = press(t, m, keyRune('s'))

	m.form.inputs[fieldName].SetValue("Desk Lamp")
	m.form.inputs[fieldCategory].SetValue("Home Goods")
	m.form.inputs[fieldPrice].SetValue("39.99")
	m.form.description.SetValue("A warm brass lamp.")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, market.PageBrowse, m.ctrl.Page())
	listings := m.ctrl.Listings()
	require.Equal(t, before+1, len(listings))
	assert.Equal(t, "Desk Lamp", listings[0].Name)
}

func TestModel_SubmitInvalidStaysOnForm(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, keyRune('s'))

	m.form.inputs[fieldPrice].SetValue("-5")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, market.PageSell, m.ctrl.Page())
	assert.Contains(t, m.form.errText, "Price (must be a positive number)")
}

func TestModel_ViewRendersEveryPage(t *testing.T) {
	m := newTestModel(t, nil)

	for _, key := range []rune{'1', '2', '3', '4'} {
		m = press(t, m, keyRune(key))
		assert.NotEmpty(t, m.View())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, keyRune('b'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Vintage Leather Jacket")
}
