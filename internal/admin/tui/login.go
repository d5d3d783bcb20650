package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginMode int

const (
	loginModeLogin loginMode = iota
	loginModeSetupUser
	loginModeSetupWorkspace
)

// loginView asks for credentials, or for the first workspace while the
// server is not set up yet.
type loginView struct {
	mode    loginMode
	inputs  []textinput.Model
	focus   int
	message string
	busy    bool
}

func newInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 32
	input.Cursor.SetMode(cursor.CursorStatic)
	return input
}

func newLoginView(mode loginMode, user string) *loginView {
	v := &loginView{mode: mode}

	if mode == loginModeSetupWorkspace {
		v.inputs = []textinput.Model{newInput("Family")}
	} else {
		name := newInput("name")
		name.SetValue(user)
		password := newInput("password")
		password.EchoMode = textinput.EchoPassword
		v.inputs = []textinput.Model{name, password}
		if user != "" {
			v.focus = 1
		}
	}
	v.inputs[v.focus].Focus()

	return v
}

func (v *loginView) name() string {
	return strings.TrimSpace(v.inputs[0].Value())
}

func (v *loginView) password() string {
	if len(v.inputs) < 2 {
		return ""
	}
	return v.inputs[1].Value()
}

func (v *loginView) fail(message string) {
	v.busy = false
	v.message = message
}

// update returns true when the user asks to submit.
func (v *loginView) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		if v.focus < len(v.inputs)-1 {
			v.move(1)
			return nil, false
		}
		return nil, !v.busy
	case "tab", "down":
		v.move(1)
		return nil, false
	case "shift+tab", "up":
		v.move(-1)
		return nil, false
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return cmd, false
}

func (v *loginView) move(delta int) {
	v.inputs[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.inputs)) % len(v.inputs)
	v.inputs[v.focus].Focus()
}

func (v *loginView) view() string {
	var b strings.Builder

	switch v.mode {
	case loginModeSetupUser:
		b.WriteString(titleStyle.Render("Create the administrator"))
		b.WriteString("\n" + mutedStyle.Render("No user exists yet.") + "\n\n")
	case loginModeSetupWorkspace:
		b.WriteString(titleStyle.Render("Create the first workspace"))
		b.WriteString("\n\n")
	default:
		b.WriteString(titleStyle.Render("Log in"))
		b.WriteString("\n\n")
	}

	labels := []string{"Name", "Password"}
	if v.mode == loginModeSetupWorkspace {
		labels = []string{"Workspace name"}
	}
	for i, input := range v.inputs {
		style := labelStyle
		if i == v.focus {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(labels[i]) + input.View() + "\n")
	}

	if v.message != "" {
		b.WriteString("\n" + dangerStyle.Render(v.message) + "\n")
	}
	if v.busy {
		b.WriteString("\n" + mutedStyle.Render("please wait…") + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("enter continue · esc quit"))

	return boxStyle.Render(b.String())
}
