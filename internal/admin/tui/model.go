package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/admin/resources"
	"github.com/familyledger/finance-backend/internal/client"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

// Backend is the server as seen by the terminal UI.
type Backend interface {
	resources.API
	Login(ctx context.Context, name string, password string) (*models.Identity, error)
	Logout(ctx context.Context) error
	SetupStage(ctx context.Context) (models.SetupStage, error)
	SetupUser(ctx context.Context, name string, password string) (*models.User, error)
	SetupWorkspace(ctx context.Context, name string) (*models.Workspace, error)
}

var _ Backend = (*client.Client)(nil)

type screen int

const (
	screenStarting screen = iota
	screenLogin
	screenWorkspaces
	screenMain
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirm
)

type stageMsg struct {
	stage models.SetupStage
	err   error
}

type loggedInMsg struct {
	identity *models.Identity
	err      error
}

type workspaceCreatedMsg struct {
	workspace *models.Workspace
	err       error
}

type statusLine struct {
	text string
	err  bool
}

type Model struct {
	ctx           context.Context
	backend       Backend
	set           *resources.Set
	notifications *entity.Notifications
	seen          int

	screen   screen
	mode     mode
	user     string
	identity *models.Identity
	stage    models.SetupStage

	workspace     primitive.ObjectID
	workspaceName string

	login    *loginView
	picker   tab
	tabs     []tab
	active   int
	booked   tab
	form     *formView
	status   statusLine
	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

// NewModel builds the program state. user prefills the login name.
func NewModel(ctx context.Context, backend Backend, user string, clock resources.Clock) *Model {
	m := &Model{
		ctx:           ctx,
		backend:       backend,
		notifications: &entity.Notifications{},
		user:          user,
		keys:          newKeyMap(),
		help:          help.New(),
	}

	m.set = resources.NewSet(backend, m.notifications, clock, nil)
	m.picker = newListTab("Workspaces", m.set.Workspaces)

	return m
}

func (m *Model) Init() tea.Cmd {
	return m.checkStage()
}

func (m *Model) checkStage() tea.Cmd {
	return func() tea.Msg {
		stage, err := m.backend.SetupStage(m.ctx)
		return stageMsg{stage: stage, err: err}
	}
}

func (m *Model) buildTabs() {
	m.tabs = []tab{
		newListTab("Assets", m.set.Assets),
		newListTab("Partners", m.set.Partners),
		newListTab("Wallets", m.set.Wallets),
		newListTab("Transactions", m.set.Transactions),
		newListTab("Recurring", m.set.RecurringPayments),
	}
	if m.identity != nil && m.identity.HasRole(models.RoleAdmin) {
		m.tabs = append(m.tabs, newListTab("Users", m.set.Users))
	}
	m.active = 0
}

// current is the tab the keys act on.
func (m *Model) current() tab {
	switch {
	case m.screen == screenWorkspaces:
		return m.picker
	case m.screen != screenMain:
		return nil
	case m.booked != nil:
		return m.booked
	case len(m.tabs) == 0:
		return nil
	}
	return m.tabs[m.active]
}

func (m *Model) showLogin(message string) {
	mode := loginModeLogin
	if m.stage == models.SetupStageCreateUser {
		mode = loginModeSetupUser
	}
	m.screen = screenLogin
	m.mode = modeBrowse
	m.form = nil
	m.booked = nil
	m.identity = nil
	m.login = newLoginView(mode, m.user)
	m.login.message = message
}

func (m *Model) setStatus(text string, err bool) {
	m.status = statusLine{text: text, err: err}
}

// fail shows err, leaving for the login screen when the session is gone.
func (m *Model) fail(err error) {
	notification := entity.Classify(err)
	if notification.Unauthorized {
		m.showLogin(notification.Message)
		return
	}
	m.setStatus(notification.Message, true)
}

// checkNotifications handles what the lists reported since the last update.
func (m *Model) checkNotifications() {
	all := m.notifications.All()
	if len(all) <= m.seen {
		return
	}
	fresh := all[m.seen:]
	m.seen = len(all)

	for _, n := range fresh {
		if n.Unauthorized {
			m.showLogin(n.Message)
			return
		}
	}
	last := fresh[len(fresh)-1]
	m.setStatus(last.Message, last.Level == entity.LevelError)
}

// refresh loads the current tab when its rows are outdated.
func (m *Model) refresh() tea.Cmd {
	t := m.current()
	if t == nil || !t.needsFetch() {
		return nil
	}
	return t.fetch(m.ctx)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.checkNotifications()
	if m.quitting {
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.refresh())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return nil

	case stageMsg:
		return m.onStage(msg)

	case loggedInMsg:
		if msg.err != nil {
			m.login.fail(entity.Classify(msg.err).Message)
			return nil
		}
		m.identity = msg.identity
		m.user = msg.identity.Name
		m.buildTabs()
		return m.checkStage()

	case workspaceCreatedMsg:
		if msg.err != nil {
			m.login.fail(entity.Classify(msg.err).Message)
			return nil
		}
		m.stage = models.SetupStageComplete
		m.set.Workspaces.Bump()
		m.selectWorkspace(*msg.workspace)
		return nil

	case loadedMsg:
		msg.apply()
		return nil

	case optionsMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return nil
		}
		if m.form != nil {
			m.form.setOptions(msg.field, msg.options)
		}
		return nil

	case submittedMsg:
		if msg.err != nil {
			if entity.Classify(msg.err).Unauthorized {
				m.fail(msg.err)
				return nil
			}
			if m.form != nil {
				m.form.setError(msg.err)
			}
			return nil
		}
		m.mode = modeBrowse
		m.form = nil
		if workspace, ok := msg.saved.(models.Workspace); ok && workspace.Id == m.workspace {
			m.workspaceName = workspace.Name
		}
		m.setStatus(msg.label, false)
		return nil

	case deletedMsg:
		m.mode = modeBrowse
		if msg.err != nil {
			m.fail(msg.err)
			return nil
		}
		m.setStatus(msg.label, false)
		return nil

	case actionMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return nil
		}
		m.set.Transactions.Bump()
		m.setStatus(msg.message, false)
		return nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return nil
}

func (m *Model) onStage(msg stageMsg) tea.Cmd {
	if msg.err != nil {
		if m.screen == screenStarting {
			m.showLogin(entity.Classify(msg.err).Message)
		} else {
			m.fail(msg.err)
		}
		return nil
	}

	m.stage = msg.stage
	switch {
	case m.identity == nil:
		m.showLogin("")
	case msg.stage == models.SetupStageCreateWorkspace:
		m.screen = screenLogin
		m.login = newLoginView(loginModeSetupWorkspace, "")
	default:
		m.screen = screenWorkspaces
		m.mode = modeBrowse
	}
	return nil
}

func (m *Model) selectWorkspace(workspace models.Workspace) {
	m.workspace = workspace.Id
	m.workspaceName = workspace.Name
	m.set.SetWorkspace(workspace.Id)
	if len(m.tabs) == 0 {
		m.buildTabs()
	}
	m.booked = nil
	m.screen = screenMain
	m.mode = modeBrowse
	m.setStatus("Workspace "+workspace.Name, false)
}

func (m *Model) onKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return nil
	}

	switch m.screen {
	case screenStarting:
		if key.Matches(msg, m.keys.Quit, m.keys.Back) {
			m.quitting = true
		}
		return nil
	case screenLogin:
		return m.onLoginKey(msg)
	}

	switch m.mode {
	case modeForm:
		return m.onFormKey(msg)
	case modeConfirm:
		return m.onConfirmKey(msg)
	}
	return m.onBrowseKey(msg)
}

func (m *Model) onLoginKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" {
		m.quitting = true
		return nil
	}

	cmd, submit := m.login.update(msg)
	if !submit {
		return cmd
	}

	view := m.login
	name, password := view.name(), view.password()
	if name == "" {
		view.fail("A name is required")
		return nil
	}
	view.busy = true
	view.message = ""

	switch view.mode {
	case loginModeSetupWorkspace:
		return func() tea.Msg {
			workspace, err := m.backend.SetupWorkspace(m.ctx, name)
			return workspaceCreatedMsg{workspace: workspace, err: err}
		}
	case loginModeSetupUser:
		return func() tea.Msg {
			user, err := m.backend.SetupUser(m.ctx, name, password)
			if err != nil {
				return loggedInMsg{err: err}
			}
			return loggedInMsg{identity: &models.Identity{Id: user.Id.Hex(), Name: user.Name, Roles: user.Roles}}
		}
	}
	return func() tea.Msg {
		identity, err := m.backend.Login(m.ctx, name, password)
		return loggedInMsg{identity: identity, err: err}
	}
}

func (m *Model) onBrowseKey(msg tea.KeyMsg) tea.Cmd {
	t := m.current()
	if t == nil {
		return nil
	}

	if m.screen == screenWorkspaces && msg.String() == "enter" {
		if selected, ok := t.selected(); ok {
			m.selectWorkspace(selected.(models.Workspace))
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	case key.Matches(msg, m.keys.Back):
		switch {
		case m.booked != nil:
			m.booked = nil
		case m.screen == screenMain:
			m.screen = screenWorkspaces
		}
	case key.Matches(msg, m.keys.PrevTab):
		if m.screen == screenMain && m.booked == nil {
			m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		}
	case key.Matches(msg, m.keys.NextTab):
		if m.screen == screenMain && m.booked == nil {
			m.active = (m.active + 1) % len(m.tabs)
		}
	case key.Matches(msg, m.keys.Up):
		t.move(-1)
	case key.Matches(msg, m.keys.Down):
		t.move(1)
	case key.Matches(msg, m.keys.NextPage):
		t.nextPage()
	case key.Matches(msg, m.keys.PrevPage):
		t.prevPage()
	case key.Matches(msg, m.keys.Sort):
		t.cycleSort()
	case key.Matches(msg, m.keys.Reload):
		return t.fetch(m.ctx)
	case key.Matches(msg, m.keys.Create):
		if t.create() {
			return m.openForm(t, "New "+strings.ToLower(t.title()))
		}
	case key.Matches(msg, m.keys.Edit):
		if t.edit() {
			return m.openForm(t, "Edit "+strings.ToLower(t.title()))
		}
	case key.Matches(msg, m.keys.Delete):
		if t.askDelete() {
			m.mode = modeConfirm
		}
	case key.Matches(msg, m.keys.Booked):
		return m.openBooked(t)
	case key.Matches(msg, m.keys.Workspace):
		m.booked = nil
		m.screen = screenWorkspaces
	case key.Matches(msg, m.keys.Update, m.keys.ForceUpdate):
		if cmd, ok := t.runAction(m.ctx, msg.String()); ok {
			m.setStatus("Updating payments…", false)
			return cmd
		}
	}
	return nil
}

func (m *Model) openBooked(t tab) tea.Cmd {
	if m.screen != screenMain || m.booked != nil {
		return nil
	}
	selected, ok := t.selected()
	if !ok {
		return nil
	}
	tx, ok := selected.(models.Transaction)
	if !ok {
		return nil
	}
	m.booked = newListTab("Booked "+tx.Name, m.set.BookedAmounts(tx))
	return nil
}

func (m *Model) openForm(t tab, title string) tea.Cmd {
	fields := t.fields()
	m.form = newFormView(title, fields, t.values())
	m.mode = modeForm

	var cmds []tea.Cmd
	for _, field := range fields {
		if field.Kind != entity.FieldReference {
			continue
		}
		cmds = append(cmds, func() tea.Msg {
			options, err := m.set.Options(m.ctx, m.workspace, field.Reference)
			return optionsMsg{field: field.Name, options: options, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) onFormKey(msg tea.KeyMsg) tea.Cmd {
	t := m.current()

	switch msg.String() {
	case "esc":
		t.closeDialog()
		m.form = nil
		m.mode = modeBrowse
		return nil
	case "ctrl+s":
		return m.submitForm(t)
	case "enter":
		if m.form.focus == len(m.form.inputs)-1 {
			return m.submitForm(t)
		}
		m.form.focusNext(1)
		return nil
	}
	return m.form.update(msg)
}

func (m *Model) submitForm(t tab) tea.Cmd {
	if m.form.busy {
		return nil
	}
	m.form.busy = true
	return t.submit(m.ctx, m.workspace, m.form.values())
}

func (m *Model) onConfirmKey(msg tea.KeyMsg) tea.Cmd {
	t := m.current()

	switch msg.String() {
	case "y", "Y":
		m.mode = modeBrowse
		return t.confirmDelete(m.ctx)
	case "n", "N", "esc":
		t.cancelDelete()
		m.mode = modeBrowse
	}
	return nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenStarting:
		return mutedStyle.Render("Connecting…")
	case screenLogin:
		return m.login.view()
	}

	var sections []string
	sections = append(sections, m.header())

	if m.screen == screenMain && m.booked == nil {
		sections = append(sections, m.tabBar())
	}

	t := m.current()
	switch m.mode {
	case modeForm:
		sections = append(sections, m.form.view())
	default:
		sections = append(sections, m.table(t))
		sections = append(sections, mutedStyle.Render(t.footer()))
	}

	if m.mode == modeConfirm {
		sections = append(sections, dangerStyle.Render(t.deletePrompt()+" (y/n)"))
	}

	if m.status.text != "" {
		style := successStyle
		if m.status.err {
			style = dangerStyle
		}
		sections = append(sections, style.Render(m.status.text))
	}

	if m.mode == modeBrowse {
		sections = append(sections, m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) header() string {
	title := titleStyle.Render("Finance")
	var parts []string
	if m.identity != nil {
		parts = append(parts, m.identity.Name)
	}
	if m.screen == screenMain {
		parts = append(parts, m.workspaceName)
	} else {
		parts = append(parts, "select a workspace, enter to open")
	}
	return title + "  " + mutedStyle.Render(strings.Join(parts, " · "))
}

func (m *Model) tabBar() string {
	rendered := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			rendered[i] = activeTabStyle.Render(t.title())
		} else {
			rendered[i] = inactiveTabStyle.Render(t.title())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) table(t tab) string {
	var b strings.Builder

	if m.booked != nil {
		b.WriteString(titleStyle.Render(t.title()) + "\n")
	}

	widths := t.widths()
	headers := t.headers()
	for i, header := range headers {
		b.WriteString(headerStyle.Width(widths[i]).Render(header))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	rows := t.render()
	if len(rows) == 0 {
		switch t.status() {
		case entity.StatusLoading:
			b.WriteString(mutedStyle.Render("loading…"))
		case entity.StatusFailed:
			b.WriteString(dangerStyle.Render("could not load, press r to retry"))
		default:
			b.WriteString(mutedStyle.Render("nothing here yet, press c to create"))
		}
		return boxStyle.Render(b.String())
	}

	for r, row := range rows {
		selected := r == t.cursor()
		for i, cell := range row {
			b.WriteString(renderCell(cell, widths[i], selected))
			b.WriteString(" ")
		}
		if r < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	if t.status() == entity.StatusLoading {
		b.WriteString("\n" + mutedStyle.Render("loading…"))
	}
	return boxStyle.Render(b.String())
}

// Run starts the terminal UI until the user quits or ctx ends.
func Run(ctx context.Context, c *client.Client, user string, clock resources.Clock) error {
	program := tea.NewProgram(NewModel(ctx, c, user, clock), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("admin ui: %w", err)
	}
	return nil
}
