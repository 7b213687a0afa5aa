package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"studytracker/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
}

// InputField pairs a label with a textinput model
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates a labeled input with the given placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{Label: label, Input: input}
}

// InputForm manages a set of labeled text inputs with a single focus.
// Exactly one field is focused at a time; tab rotates through them.
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates a new input form focused on the first field
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields: fields,
		Keys:   DefaultInputFormKeys,
	}
	form.setFocus(0)
	return form
}

// setFocus blurs every field and focuses the one at index
func (f *InputForm) setFocus(index int) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	for i := range f.Fields {
		f.Fields[i].Input.Blur()
	}
	f.FocusedField = index
	f.Fields[index].Input.Focus()
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, f.Keys.Tab) {
		f.NextField()
		return true, nil
	}

	if f.FocusedField < 0 || f.FocusedField >= len(f.Fields) {
		return false, nil
	}
	var cmd tea.Cmd
	f.Fields[f.FocusedField].Input, cmd = f.Fields[f.FocusedField].Input.Update(msg)
	return false, cmd
}

// NextField rotates focus to the next field
func (f *InputForm) NextField() {
	if len(f.Fields) > 1 {
		f.setFocus((f.FocusedField + 1) % len(f.Fields))
	}
}

// Value returns the trimmed value of a field by index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// Reset clears all field values and refocuses the first field
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
	}
	f.setFocus(0)
}

// RenderField renders a single labeled field, highlighting the focused one
func (f *InputForm) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}

	field := f.Fields[index]
	box := styles.InputField
	if index == f.FocusedField {
		box = styles.InputFocused
	}

	return styles.InputLabel.Render(field.Label) + "\n" + box.Render(field.Input.View())
}

// RenderHelp renders the key help line from the form's keymap. submitText
// overrides the submit binding's description (e.g. "save").
func (f *InputForm) RenderHelp(submitText string) string {
	bindings := []key.Binding{f.Keys.Submit, f.Keys.Cancel}
	if len(f.Fields) > 1 {
		bindings = append([]key.Binding{f.Keys.Tab}, bindings...)
	}

	var parts []string
	for _, b := range bindings {
		h := b.Help()
		desc := h.Desc
		if h.Key == f.Keys.Submit.Help().Key && submitText != "" {
			desc = submitText
		}
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(desc))
	}

	return strings.Join(parts, "  ")
}
