package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"swapmeet/cmd/swapmeet/ui"
	"swapmeet/internal/market"
)

// Field order for tab cycling on the sell page.
const (
	fieldName = iota
	fieldCategory
	fieldPrice
	fieldImageURL
	fieldKeywords
	fieldDescription
	fieldCount
)

// formState holds the sell page widgets. The description is a textarea
// so a suggested draft of several sentences stays editable in place.
type formState struct {
	inputs      [fieldDescription]textinput.Model
	description textarea.Model
	focus       int

	errText     string
	successText string
}

func newFormState(styles ui.Styles) formState {
	var f formState

	labels := [fieldDescription]struct {
		placeholder string
		charLimit   int
	}{
		fieldName:     {"Product name", 80},
		fieldCategory: {"Category (e.g. Electronics)", 40},
		fieldPrice:    {"Price in Rand, e.g. 39.99", 16},
		fieldImageURL: {"Image URL (optional)", 200},
		fieldKeywords: {"Keywords, comma separated (optional)", 120},
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i].placeholder
		in.CharLimit = labels[i].charLimit
		in.Width = 48
		in.PromptStyle = styles.Bold
		f.inputs[i] = in
	}

	f.description = textarea.New()
	f.description.Placeholder = "Description (ctrl+g to draft one from name and keywords)"
	f.description.CharLimit = 1000
	f.description.SetWidth(50)
	f.description.SetHeight(5)

	f.focus = fieldName
	f.inputs[fieldName].Focus()
	return f
}

// reset clears every field and message and refocuses the name field.
// Runs on every entry to the sell page so stale drafts never greet the
// next listing.
func (f *formState) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.description.SetValue("")
	f.description.Blur()
	f.errText = ""
	f.successText = ""
	f.focus = fieldName
	f.inputs[fieldName].Focus()
}

func (f *formState) input() market.ListingInput {
	return market.ListingInput{
		Name:        f.inputs[fieldName].Value(),
		Category:    f.inputs[fieldCategory].Value(),
		Price:       f.inputs[fieldPrice].Value(),
		ImageURL:    f.inputs[fieldImageURL].Value(),
		Keywords:    f.inputs[fieldKeywords].Value(),
		Description: f.description.Value(),
	}
}

func (f *formState) cycleFocus(delta int) tea.Cmd {
	if f.focus < fieldDescription {
		f.inputs[f.focus].Blur()
	} else {
		f.description.Blur()
	}

	f.focus = (f.focus + delta + fieldCount) % fieldCount

	if f.focus < fieldDescription {
		return f.inputs[f.focus].Focus()
	}
	return f.description.Focus()
}

// anyFocused reports whether a form widget currently owns the keyboard.
func (f *formState) anyFocused() bool {
	for i := range f.inputs {
		if f.inputs[i].Focused() {
			return true
		}
	}
	return f.description.Focused()
}

// updateFormKeys handles key input on the sell page.
func (m *Model) updateFormKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab":
		return m.form.cycleFocus(1), true
	case "shift+tab":
		return m.form.cycleFocus(-1), true
	case "ctrl+g":
		return m.startSuggestion(), true
	case "ctrl+s":
		m.submitListing()
		return nil, true
	case "esc":
		if m.form.anyFocused() {
			if m.form.focus < fieldDescription {
				m.form.inputs[m.form.focus].Blur()
			} else {
				m.form.description.Blur()
			}
			return nil, true
		}
		return nil, false
	}

	if !m.form.anyFocused() {
		return nil, false
	}

	var cmd tea.Cmd
	if m.form.focus < fieldDescription {
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	} else {
		m.form.description, cmd = m.form.description.Update(msg)
	}
	return cmd, true
}

// startSuggestion kicks off the async drafting call. The trigger is
// refused while a call is outstanding and when neither name nor
// keywords carry text.
func (m *Model) startSuggestion() tea.Cmd {
	name := m.form.inputs[fieldName].Value()
	keywords := m.form.inputs[fieldKeywords].Value()

	if err := m.ctrl.BeginSuggestion(name, keywords); err != nil {
		var ve *market.ValidationError
		if errors.As(err, &ve) {
			m.form.errText = market.MsgSuggestNeedsInput
		} else {
			m.form.errText = err.Error()
		}
		return nil
	}

	m.form.errText = ""
	m.form.successText = ""

	suggestCmd := func() tea.Msg {
		text, err := m.ctrl.SuggestDescription(context.Background(), name, keywords)
		return suggestResultMsg{text: text, err: err}
	}
	return tea.Batch(m.spinner.Tick, suggestCmd)
}

// applySuggestion handles the async drafting outcome.
func (m *Model) applySuggestion(msg suggestResultMsg) {
	m.ctrl.EndSuggestion()
	if msg.err != nil {
		m.form.errText = m.ctrl.SuggestionFailureMessage(msg.err)
		return
	}
	m.form.description.SetValue(msg.text)
	m.form.errText = ""
}

func (m *Model) submitListing() {
	p, err := m.ctrl.SubmitListing(m.form.input())
	if err != nil {
		m.form.errText = err.Error()
		m.form.successText = ""
		return
	}
	// The controller has navigated to browse; arriving back at the sell
	// page resets the form, so there is nothing to clear here.
	m.form.successText = "Listed " + p.Name + "."
	m.browse.rebuildCategories(m.ctrl.Listings())
	m.browse.cursor = 0
}

func (m Model) viewForm() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Sell an Item"))
	sb.WriteString("\n")

	labels := [fieldDescription]string{
		fieldName:     "Name",
		fieldCategory: "Category",
		fieldPrice:    "Price (R)",
		fieldImageURL: "Image URL",
		fieldKeywords: "Keywords",
	}
	for i := range m.form.inputs {
		sb.WriteString(m.styles.Muted.Render(labels[i]))
		sb.WriteString("\n")
		sb.WriteString(m.form.inputs[i].View())
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Muted.Render("Description"))
	sb.WriteString("\n")
	sb.WriteString(m.form.description.View())
	sb.WriteString("\n\n")

	if m.ctrl.Suggesting() {
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.styles.Muted.Render(" drafting a description..."))
		sb.WriteString("\n")
	}
	if m.form.errText != "" {
		sb.WriteString(m.styles.Error.Render(m.form.errText))
		sb.WriteString("\n")
	}
	if m.form.successText != "" {
		sb.WriteString(m.styles.Success.Render(m.form.successText))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Muted.Render("tab next field • ctrl+g suggest description • ctrl+s submit"))
	return sb.String()
}
