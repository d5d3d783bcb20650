package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevTab     key.Binding
	NextTab     key.Binding
	Up          key.Binding
	Down        key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	Sort        key.Binding
	Reload      key.Binding
	Create      key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Booked      key.Binding
	Update      key.Binding
	ForceUpdate key.Binding
	Workspace   key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		PrevTab:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "tab")),
		NextTab:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tab")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextPage:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n/p", "page")),
		PrevPage:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous page")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Create:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create")),
		Edit:        key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Booked:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "booked")),
		Update:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u/U", "update payments")),
		ForceUpdate: key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "update payments, overwrite")),
		Workspace:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "workspace")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextPage, k.Sort, k.Reload, k.Create, k.Edit, k.Delete, k.Booked, k.Update, k.Workspace, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.Up, k.Down},
		{k.NextPage, k.PrevPage, k.Sort, k.Reload},
		{k.Create, k.Edit, k.Delete},
		{k.Booked, k.Update, k.ForceUpdate, k.Workspace, k.Back, k.Quit},
	}
}
