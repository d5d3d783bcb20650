package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type loadedMsg struct {
	apply func() bool
}

type submittedMsg struct {
	saved any
	label string
	err   error
}

type deletedMsg struct {
	label string
	err   error
}

type actionMsg struct {
	message string
	err     error
}

// tab is the part of an entity list the program needs, independent of the
// entity type.
type tab interface {
	title() string
	headers() []string
	widths() []int
	render() [][]entity.Cell
	footer() string
	status() entity.Status
	rowCount() int
	cursor() int
	move(delta int)
	needsFetch() bool
	fetch(ctx context.Context) tea.Cmd
	nextPage() bool
	prevPage() bool
	cycleSort()
	create() bool
	edit() bool
	fields() []entity.Field
	values() entity.Values
	editing() bool
	closeDialog()
	submit(ctx context.Context, workspace primitive.ObjectID, values entity.Values) tea.Cmd
	askDelete() bool
	deletePrompt() string
	cancelDelete()
	confirmDelete(ctx context.Context) tea.Cmd
	runAction(ctx context.Context, key string) (tea.Cmd, bool)
	selected() (any, bool)
}

type listTab[E any] struct {
	name      string
	list      *entity.List[E, primitive.ObjectID]
	row       int
	attempted int
}

func newListTab[E any](name string, list *entity.List[E, primitive.ObjectID]) *listTab[E] {
	return &listTab[E]{name: name, list: list, attempted: -1}
}

func (t *listTab[E]) title() string {
	return t.name
}

func (t *listTab[E]) headers() []string {
	headers := make([]string, len(t.list.Columns))
	for i, column := range t.list.Columns {
		headers[i] = column.Title
		for _, order := range t.list.Sort() {
			if column.Sort == "" || order.Field != column.Sort {
				continue
			}
			if order.Direction == models.SortDescending {
				headers[i] += " ▼"
			} else {
				headers[i] += " ▲"
			}
		}
	}
	return headers
}

func (t *listTab[E]) widths() []int {
	widths := make([]int, len(t.list.Columns))
	for i, column := range t.list.Columns {
		widths[i] = max(column.Width, len(column.Title)+2)
	}
	return widths
}

func (t *listTab[E]) render() [][]entity.Cell {
	return t.list.Render()
}

func (t *listTab[E]) footer() string {
	var parts []string

	pages := max(t.list.TotalPages(), 1)
	parts = append(parts, fmt.Sprintf("page %d/%d", t.list.Page()+1, pages))
	parts = append(parts, fmt.Sprintf("%d rows", t.list.Total()))

	var sorted []string
	for _, order := range t.list.Sort() {
		sorted = append(sorted, order.Field+" "+string(order.Direction))
	}
	if len(sorted) > 0 {
		parts = append(parts, "sorted by "+strings.Join(sorted, ", "))
	}

	return strings.Join(parts, " · ")
}

func (t *listTab[E]) status() entity.Status {
	return t.list.Status()
}

func (t *listTab[E]) rowCount() int {
	return len(t.list.Rows())
}

func (t *listTab[E]) cursor() int {
	return t.row
}

func (t *listTab[E]) move(delta int) {
	t.row = min(max(t.row+delta, 0), max(t.rowCount()-1, 0))
}

// needsFetch is false after a failed load of the current version, a retry
// needs an explicit reload.
func (t *listTab[E]) needsFetch() bool {
	return t.list.Stale() && t.list.Version() != t.attempted
}

func (t *listTab[E]) fetch(ctx context.Context) tea.Cmd {
	request := t.list.Fetch()
	t.attempted = request.Version

	return func() tea.Msg {
		result := t.list.Load(ctx, request)
		return loadedMsg{apply: func() bool {
			applied := t.list.Receive(result)
			t.move(0)
			return applied
		}}
	}
}

func (t *listTab[E]) nextPage() bool {
	if t.list.NextPage() {
		t.row = 0
		return true
	}
	return false
}

func (t *listTab[E]) prevPage() bool {
	if t.list.PrevPage() {
		t.row = 0
		return true
	}
	return false
}

func (t *listTab[E]) cycleSort() {
	t.list.CycleSort()
}

func (t *listTab[E]) create() bool {
	return t.list.Create()
}

func (t *listTab[E]) edit() bool {
	row, ok := t.current()
	if !ok {
		return false
	}
	return t.list.Edit(row)
}

func (t *listTab[E]) fields() []entity.Field {
	if t.list.Dialog == nil {
		return nil
	}
	return t.list.Dialog.Form.Fields()
}

func (t *listTab[E]) values() entity.Values {
	if t.list.Dialog == nil {
		return nil
	}
	return t.list.Dialog.Values()
}

func (t *listTab[E]) editing() bool {
	if t.list.Dialog == nil {
		return false
	}
	_, ok := t.list.Dialog.State().(entity.Editing[E])
	return ok
}

func (t *listTab[E]) closeDialog() {
	if t.list.Dialog != nil {
		t.list.Dialog.Close()
	}
}

func (t *listTab[E]) submit(ctx context.Context, workspace primitive.ObjectID, values entity.Values) tea.Cmd {
	dialog := t.list.Dialog
	for name, value := range values {
		dialog.SetValue(name, value)
	}

	return func() tea.Msg {
		saved, err := dialog.Submit(ctx, workspace)
		if err != nil {
			return submittedMsg{err: err}
		}
		return submittedMsg{saved: saved, label: "Saved " + t.list.Functions.Format(saved)}
	}
}

func (t *listTab[E]) askDelete() bool {
	row, ok := t.current()
	if !ok {
		return false
	}
	t.list.AskDelete(row)
	return true
}

func (t *listTab[E]) deletePrompt() string {
	return t.list.DeleteDialog.Prompt()
}

func (t *listTab[E]) cancelDelete() {
	t.list.DeleteDialog.Cancel()
}

func (t *listTab[E]) confirmDelete(ctx context.Context) tea.Cmd {
	target, ok := t.list.DeleteDialog.Target()
	if !ok {
		return nil
	}
	label := t.list.Functions.Format(target)

	return func() tea.Msg {
		if err := t.list.DeleteDialog.Confirm(ctx); err != nil {
			return deletedMsg{err: err}
		}
		return deletedMsg{label: "Deleted " + label}
	}
}

func (t *listTab[E]) runAction(ctx context.Context, key string) (tea.Cmd, bool) {
	row, ok := t.current()
	if !ok {
		return nil, false
	}

	for _, action := range t.list.Actions {
		if action.Key != key {
			continue
		}
		return func() tea.Msg {
			message, err := action.Run(ctx, row)
			return actionMsg{message: message, err: err}
		}, true
	}
	return nil, false
}

func (t *listTab[E]) selected() (any, bool) {
	return t.current()
}

func (t *listTab[E]) current() (E, bool) {
	rows := t.list.Rows()
	if t.row < 0 || t.row >= len(rows) {
		var zero E
		return zero, false
	}
	return rows[t.row], true
}
