package tui

import (
	"context"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/resources"
	"github.com/familyledger/finance-backend/internal/admin/resources/resourcestest"
	"github.com/familyledger/finance-backend/internal/client"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type fakeBackend struct {
	*resourcestest.MemoryAPI
	stage    models.SetupStage
	identity models.Identity
	password string
	logins   int
}

func newBackend() *fakeBackend {
	return &fakeBackend{
		MemoryAPI: &resourcestest.MemoryAPI{Update: &models.PaymentUpdate{}},
		stage:     models.SetupStageComplete,
		identity:  models.Identity{Name: "admin", Roles: []string{models.RoleAdmin, models.RoleUser}},
		password:  "secret",
	}
}

var _ Backend = (*fakeBackend)(nil)

func (b *fakeBackend) Login(ctx context.Context, name string, password string) (*models.Identity, error) {
	b.logins++
	if name != b.identity.Name || password != b.password {
		return nil, &client.APIError{Status: http.StatusUnauthorized, Message: "bad credentials", TranslationKey: "error.login.invalid"}
	}
	identity := b.identity
	return &identity, nil
}

func (b *fakeBackend) Logout(ctx context.Context) error {
	return nil
}

func (b *fakeBackend) SetupStage(ctx context.Context) (models.SetupStage, error) {
	return b.stage, nil
}

func (b *fakeBackend) SetupUser(ctx context.Context, name string, password string) (*models.User, error) {
	user, err := b.CreateUser(ctx, &client.UserInput{Name: name, Password: password, Roles: []string{models.RoleAdmin, models.RoleUser}})
	if err != nil {
		return nil, err
	}
	b.identity = models.Identity{Id: user.Id.Hex(), Name: name, Roles: user.Roles}
	b.password = password
	b.stage = models.SetupStageCreateWorkspace
	return user, nil
}

func (b *fakeBackend) SetupWorkspace(ctx context.Context, name string) (*models.Workspace, error) {
	workspace, err := b.CreateWorkspace(ctx, &models.Workspace{Name: name})
	if err != nil {
		return nil, err
	}
	b.stage = models.SetupStageComplete
	return workspace, nil
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	saveKey  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

// run executes cmd the way the program would, minus the goroutines.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil, tea.QuitMsg:
		return nil
	case tea.BatchMsg:
		var msgs []tea.Msg
		for _, c := range msg {
			msgs = append(msgs, run(c)...)
		}
		return msgs
	default:
		return []tea.Msg{msg}
	}
}

// send delivers every message in turn, each one with all the messages its
// commands produce.
func send(t *testing.T, m *Model, msgs ...tea.Msg) {
	t.Helper()

	for _, msg := range msgs {
		queue := []tea.Msg{msg}
		for steps := 0; len(queue) > 0; steps++ {
			require.Less(t, steps, 200, "update loop does not settle")
			_, cmd := m.Update(queue[0])
			queue = append(queue[1:], run(cmd)...)
		}
	}
}

func start(t *testing.T, backend *fakeBackend) *Model {
	t.Helper()

	m := NewModel(context.Background(), backend, "admin", resources.Clock{Location: time.UTC})
	send(t, m, run(m.Init())...)
	return m
}

func login(t *testing.T, m *Model) {
	t.Helper()
	require.Equal(t, screenLogin, m.screen)
	send(t, m, typed("secret"), enterKey)
}

func seedWorkspace(backend *fakeBackend) models.Workspace {
	workspace := models.Workspace{Id: primitive.NewObjectID(), Name: "Private"}
	backend.WorkspaceRows = append(backend.WorkspaceRows, workspace)
	return workspace
}

func TestLoginAndOpenWorkspace(t *testing.T) {
	backend := newBackend()
	workspace := seedWorkspace(backend)
	backend.AssetRows = []models.Asset{{Id: primitive.NewObjectID(), WorkspaceId: workspace.Id, Name: "Euro", Code: "EUR"}}

	m := start(t, backend)
	login(t, m)

	assert.Equal(t, 1, backend.logins)
	require.Equal(t, screenWorkspaces, m.screen)
	require.Equal(t, 1, m.picker.rowCount())

	send(t, m, enterKey)
	require.Equal(t, screenMain, m.screen)
	assert.Equal(t, workspace.Id, m.workspace)
	assert.Equal(t, "Private", m.workspaceName)
	assert.Equal(t, "Users", m.tabs[len(m.tabs)-1].title())

	assert.Equal(t, 1, m.current().rowCount())
	assert.Contains(t, m.View(), "Euro")
}

func TestLoginRejected(t *testing.T) {
	backend := newBackend()
	m := start(t, backend)

	send(t, m, typed("wrong"), enterKey)

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Wrong user name or password", m.login.message)
	assert.False(t, m.login.busy)
}

func TestUsersTabHiddenForNonAdmins(t *testing.T) {
	backend := newBackend()
	backend.identity.Roles = []string{models.RoleUser}
	seedWorkspace(backend)

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)

	require.Len(t, m.tabs, 5)
	for _, item := range m.tabs {
		assert.NotEqual(t, "Users", item.title())
	}
}

func TestSetupFlow(t *testing.T) {
	backend := newBackend()
	backend.stage = models.SetupStageCreateUser

	m := NewModel(context.Background(), backend, "", resources.Clock{Location: time.UTC})
	send(t, m, run(m.Init())...)
	require.Equal(t, loginModeSetupUser, m.login.mode)

	send(t, m, typed("admin"), tabKey, typed("secret"), enterKey)
	require.Len(t, backend.UserRows, 1)
	require.Equal(t, screenLogin, m.screen)
	require.Equal(t, loginModeSetupWorkspace, m.login.mode)

	send(t, m, typed("Family"), enterKey)
	require.Len(t, backend.WorkspaceRows, 1)
	assert.Equal(t, screenMain, m.screen)
	assert.Equal(t, "Family", m.workspaceName)
	assert.Equal(t, models.SetupStageComplete, m.stage)
}

func TestExpiredSessionShowsLogin(t *testing.T) {
	backend := newBackend()
	seedWorkspace(backend)

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)
	require.Equal(t, screenMain, m.screen)

	backend.Err = &client.APIError{Status: http.StatusUnauthorized, TranslationKey: "error.unauthorized"}
	send(t, m, typed("r"))

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Please log in", m.login.message)
}

func TestFailedLoadIsNotRetriedByItself(t *testing.T) {
	backend := newBackend()
	seedWorkspace(backend)

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)

	backend.Err = &client.APIError{Status: http.StatusInternalServerError, TranslationKey: "error.internal"}
	send(t, m, typed("s"))
	calls := backend.Calls

	send(t, m, typed("j"), typed("k"))
	assert.Equal(t, calls, backend.Calls)
	assert.True(t, m.status.err)
	assert.Equal(t, "Something went wrong on the server", m.status.text)
	assert.Contains(t, m.View(), "press r to retry")
}

func TestCreateAsset(t *testing.T) {
	backend := newBackend()
	workspace := seedWorkspace(backend)

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)

	send(t, m, typed("c"))
	require.Equal(t, modeForm, m.mode)

	send(t, m, typed("Euro"), tabKey, typed("EUR"), saveKey)
	require.Equal(t, modeBrowse, m.mode)
	require.Len(t, backend.AssetRows, 1)
	assert.Equal(t, workspace.Id, backend.AssetRows[0].WorkspaceId)
	assert.Equal(t, "Saved Euro (EUR)", m.status.text)
	assert.Equal(t, 1, m.current().rowCount())
}

func TestInvalidFormStaysOpen(t *testing.T) {
	backend := newBackend()
	seedWorkspace(backend)

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)
	send(t, m, typed("c"))
	calls := backend.Calls

	send(t, m, typed("Euro"), tabKey, typed("E"), saveKey)

	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, calls, backend.Calls)
	assert.Contains(t, m.form.errors, "code")
	assert.False(t, m.form.busy)

	send(t, m, escKey)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, backend.AssetRows)
}

func TestReferenceFieldCyclesOptions(t *testing.T) {
	backend := newBackend()
	workspace := seedWorkspace(backend)
	partner := models.Partner{Id: primitive.NewObjectID(), WorkspaceId: workspace.Id, Name: "Bank"}
	backend.PartnerRows = []models.Partner{partner}

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)
	send(t, m, typed("c"))

	require.Len(t, m.form.options["providerId"], 1)
	send(t, m, tabKey, tabKey, tabKey, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, partner.Id.Hex(), m.form.values()["providerId"])
	assert.Contains(t, m.form.view(), "Bank")

	send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "", m.form.values()["providerId"])
}

func TestRefusedDelete(t *testing.T) {
	backend := newBackend()
	workspace := seedWorkspace(backend)
	asset := models.Asset{Id: primitive.NewObjectID(), WorkspaceId: workspace.Id, Name: "Euro", Code: "EUR"}
	backend.AssetRows = []models.Asset{asset}
	backend.WalletRows = []models.Wallet{{Id: primitive.NewObjectID(), WorkspaceId: workspace.Id, Name: "Checking", AssetId: &asset.Id}}

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)

	send(t, m, typed("d"))
	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), "Delete Euro (EUR)?")

	send(t, m, typed("y"))
	assert.Equal(t, modeBrowse, m.mode)
	assert.True(t, m.status.err)
	assert.Equal(t, "The entry is used by other entries and cannot be deleted", m.status.text)
	assert.Len(t, backend.AssetRows, 1)
	assert.Equal(t, 1, m.current().rowCount())
}

func TestCancelDelete(t *testing.T) {
	backend := newBackend()
	workspace := seedWorkspace(backend)
	backend.PartnerRows = []models.Partner{{Id: primitive.NewObjectID(), WorkspaceId: workspace.Id, Name: "Bank"}}

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey, tea.KeyMsg{Type: tea.KeyRight}, typed("d"), typed("n"))

	assert.Equal(t, modeBrowse, m.mode)
	assert.Len(t, backend.PartnerRows, 1)
}

func TestBookedAmountsOverlay(t *testing.T) {
	backend := newBackend()
	workspace := seedWorkspace(backend)
	asset := models.Asset{Id: primitive.NewObjectID(), WorkspaceId: workspace.Id, Name: "Euro", Code: "EUR"}
	wallet := models.Wallet{Id: primitive.NewObjectID(), WorkspaceId: workspace.Id, Name: "Checking", AssetId: &asset.Id}
	tx := models.Transaction{
		Id:          primitive.NewObjectID(),
		WorkspaceId: workspace.Id,
		Name:        "Rent",
		Amount:      decimal.NewFromInt(-500),
		Date:        time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		AssetId:     asset.Id,
		WalletId:    wallet.Id,
	}
	backend.AssetRows = []models.Asset{asset}
	backend.WalletRows = []models.Wallet{wallet}
	backend.TransactionRows = []models.Transaction{tx}
	backend.BookedRows = []models.BookedAmount{{Id: primitive.NewObjectID(), TransactionId: tx.Id, Amount: decimal.NewFromInt(-200), Date: tx.Date}}

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)

	right := tea.KeyMsg{Type: tea.KeyRight}
	send(t, m, right, right, right)
	require.Equal(t, "Transactions", m.current().title())
	assert.Contains(t, m.View(), "-500.00")

	send(t, m, typed("b"))
	require.NotNil(t, m.booked)
	assert.Equal(t, 1, m.current().rowCount())
	assert.Contains(t, m.View(), "-200.00")

	send(t, m, escKey)
	assert.Nil(t, m.booked)
	assert.Equal(t, "Transactions", m.current().title())
}

func TestUpdatePaymentsAction(t *testing.T) {
	backend := newBackend()
	workspace := seedWorkspace(backend)
	backend.PaymentRows = []models.RecurringPayment{{Id: primitive.NewObjectID(), WorkspaceId: workspace.Id, Name: "Rent", CronSchedule: "0 0 0 1 * *"}}
	backend.Update = &models.PaymentUpdate{Delete: make([]models.Transaction, 2), Create: make([]models.Transaction, 3)}

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey)

	right := tea.KeyMsg{Type: tea.KeyRight}
	send(t, m, right, right, right)
	require.Equal(t, "Transactions", m.current().title())
	require.False(t, m.set.Transactions.Stale())

	send(t, m, right)
	require.Equal(t, "Recurring", m.current().title())

	send(t, m, typed("u"), typed("U"))
	assert.Equal(t, []bool{false, true}, backend.Forced)
	assert.Equal(t, "Rent: 2 payments removed, 3 created", m.status.text)
	assert.True(t, m.set.Transactions.Stale())
}

func TestWorkspaceKeyReturnsToPicker(t *testing.T) {
	backend := newBackend()
	seedWorkspace(backend)
	other := models.Workspace{Id: primitive.NewObjectID(), Name: "Shared"}
	backend.WorkspaceRows = append(backend.WorkspaceRows, other)

	m := start(t, backend)
	login(t, m)
	send(t, m, enterKey, typed("w"))
	require.Equal(t, screenWorkspaces, m.screen)

	send(t, m, typed("j"), enterKey)
	assert.Equal(t, other.Id, m.workspace)
	assert.Equal(t, other.Id, m.set.Assets.Workspace())
}

func TestQuit(t *testing.T) {
	m := start(t, newBackend())
	login(t, m)

	_, cmd := m.Update(typed("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
