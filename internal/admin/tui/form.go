package tui

import (
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/admin/resources"
)

type optionsMsg struct {
	field   string
	options []resources.Option
	err     error
}

// formView edits the values of a dialog. Choice and reference fields cycle
// through their values with ←/→.
type formView struct {
	title   string
	fields  []entity.Field
	inputs  []textinput.Model
	focus   int
	options map[string][]resources.Option
	errors  map[string]string
	message string
	busy    bool
}

func newFormView(title string, fields []entity.Field, values entity.Values) *formView {
	f := &formView{
		title:   title,
		fields:  fields,
		inputs:  make([]textinput.Model, len(fields)),
		options: map[string][]resources.Option{},
		errors:  map[string]string{},
	}

	for i, field := range fields {
		input := newInput("")
		input.CharLimit = 1024
		input.Width = 40
		if field.Kind == entity.FieldPassword {
			input.EchoMode = textinput.EchoPassword
			input.Placeholder = "unchanged"
		}
		input.SetValue(values[field.Name])
		f.inputs[i] = input
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}

	return f
}

func (f *formView) values() entity.Values {
	values := entity.Values{}
	for i, field := range f.fields {
		values[field.Name] = f.inputs[i].Value()
	}
	return values
}

func (f *formView) setOptions(field string, options []resources.Option) {
	f.options[field] = options
}

func (f *formView) setError(err error) {
	f.busy = false
	f.errors = map[string]string{}
	f.message = ""

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		for name, message := range validationErr.Fields {
			f.errors[name] = message
		}
		return
	}
	f.message = entity.Classify(err).Message
}

func (f *formView) focusNext(delta int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// choices lists the values the focused field cycles through.
func (f *formView) choices() []string {
	field := f.fields[f.focus]
	switch field.Kind {
	case entity.FieldChoice:
		return field.Choices
	case entity.FieldReference:
		var ids []string
		if !field.Required {
			ids = append(ids, "")
		}
		for _, option := range f.options[field.Name] {
			ids = append(ids, option.Id)
		}
		return ids
	}
	return nil
}

func (f *formView) cycle(delta int) bool {
	choices := f.choices()
	if len(choices) == 0 {
		return false
	}

	current := slices.Index(choices, strings.TrimSpace(f.inputs[f.focus].Value()))
	next := 0
	if current >= 0 {
		next = (current + delta + len(choices)) % len(choices)
	}
	f.inputs[f.focus].SetValue(choices[next])
	f.inputs[f.focus].CursorEnd()
	return true
}

func (f *formView) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.focusNext(1)
		return nil
	case "shift+tab", "up":
		f.focusNext(-1)
		return nil
	case "left":
		if f.cycle(-1) {
			return nil
		}
	case "right":
		if f.cycle(1) {
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formView) label(field entity.Field, value string) string {
	if field.Kind != entity.FieldReference || value == "" {
		return ""
	}
	for _, option := range f.options[field.Name] {
		if option.Id == strings.TrimSpace(value) {
			return option.Label
		}
	}
	return ""
}

func (f *formView) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		name := field.Label
		if field.Required {
			name += " *"
		}

		style := labelStyle
		if i == f.focus {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(name))
		b.WriteString(f.inputs[i].View())

		if label := f.label(field, f.inputs[i].Value()); label != "" {
			b.WriteString("  " + successStyle.Render(label))
		}
		if len(field.Choices) > 0 || field.Kind == entity.FieldReference {
			b.WriteString("  " + mutedStyle.Render("←/→"))
		}
		if message, ok := f.errors[field.Name]; ok {
			b.WriteString("\n" + labelStyle.Render("") + dangerStyle.Render(message))
		}
		b.WriteString("\n")
	}

	if f.message != "" {
		b.WriteString("\n" + dangerStyle.Render(f.message) + "\n")
	}
	if f.busy {
		b.WriteString("\n" + mutedStyle.Render("saving…") + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("tab/↑↓ field · ctrl+s save · esc cancel"))

	return activeBoxStyle.Render(b.String())
}
