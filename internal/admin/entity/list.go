package entity

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Request is one issued list call. Seq grows with every request so late
// answers of superseded requests can be told apart.
type Request struct {
	Seq     uint64
	Version int
	Query   Query
}

type Result[E any] struct {
	Request Request
	Page    *models.PagedResponse[E]
	Err     error
}

// List is the state of a paged, server sorted table of one resource.
// Fetch, Load and Receive split a reload so the request can run outside
// the caller's event loop.
type List[E any, ID comparable] struct {
	Functions Functions[E, ID]
	Columns   []Column[E]
	Actions   []Action[E]
	Notifier  Notifier

	Dialog       *Dialog[E]
	DeleteDialog *DeleteDialog[E, ID]

	mu            sync.Mutex
	status        Status
	page          int
	size          int
	sort          []models.SortOrder
	workspace     primitive.ObjectID
	version       int
	loadedVersion int
	seq           uint64
	data          *models.PagedResponse[E]
	err           error
}

// NewList builds a list. A nil form leaves the list without a dialog.
// onSubmit receives every created or updated entity after the list has
// been marked for reload.
func NewList[E any, ID comparable](functions Functions[E, ID], form Form[E], notifier Notifier, onSubmit func(E)) *List[E, ID] {
	l := &List[E, ID]{
		Functions:     functions,
		Notifier:      notifier,
		size:          models.DefaultPageSize,
		loadedVersion: -1,
	}

	if form != nil {
		l.Dialog = NewDialog(form, func(entity E) {
			l.Bump()
			if onSubmit != nil {
				onSubmit(entity)
			}
		})
	}
	l.DeleteDialog = NewDeleteDialog(functions, func(E) { l.Bump() })

	return l
}

// Fetch issues a request for the current page and moves to loading.
func (l *List[E, ID]) Fetch() Request {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	l.status = StatusLoading
	return Request{
		Seq:     l.seq,
		Version: l.version,
		Query: Query{
			Page:        l.page,
			Size:        l.size,
			Sort:        append([]models.SortOrder{}, l.sort...),
			WorkspaceId: l.workspace,
		},
	}
}

// Load runs request without touching the list state.
func (l *List[E, ID]) Load(ctx context.Context, request Request) Result[E] {
	page, err := l.Functions.List(ctx, request.Query)
	return Result[E]{Request: request, Page: page, Err: err}
}

// Receive applies result unless a newer request was issued meanwhile. On
// failure the previous rows stay and the error goes to the notifier.
func (l *List[E, ID]) Receive(result Result[E]) bool {
	l.mu.Lock()
	if result.Request.Seq != l.seq {
		l.mu.Unlock()
		return false
	}

	if result.Err != nil {
		l.status = StatusFailed
		l.err = result.Err
		l.mu.Unlock()

		if l.Notifier != nil {
			l.Notifier.Notify(Classify(result.Err))
		}
		return true
	}

	l.status = StatusIdle
	l.err = nil
	l.data = result.Page
	l.loadedVersion = result.Request.Version
	l.mu.Unlock()
	return true
}

// Reload fetches the current page and waits for it.
func (l *List[E, ID]) Reload(ctx context.Context) error {
	result := l.Load(ctx, l.Fetch())
	l.Receive(result)
	return result.Err
}

// Bump marks the rows as outdated, see Stale.
func (l *List[E, ID]) Bump() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.version++
}

// Stale reports whether the shown rows predate the last Bump or were never
// loaded.
func (l *List[E, ID]) Stale() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadedVersion != l.version
}

func (l *List[E, ID]) Version() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.version
}

func (l *List[E, ID]) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

func (l *List[E, ID]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *List[E, ID]) Rows() []E {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.data == nil {
		return nil
	}
	return l.data.Data
}

func (l *List[E, ID]) Total() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.data == nil {
		return 0
	}
	return l.data.TotalElements
}

func (l *List[E, ID]) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.data == nil {
		return 0
	}
	return l.data.TotalPages
}

func (l *List[E, ID]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

func (l *List[E, ID]) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

// SetPage moves to page, clamped at zero. It reports whether the page
// changed.
func (l *List[E, ID]) SetPage(page int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	page = max(page, 0)
	if page == l.page {
		return false
	}
	l.page = page
	l.version++
	return true
}

func (l *List[E, ID]) SetSize(size int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	size = min(max(size, 1), models.MaxPageSize)
	if size != l.size {
		l.size = size
		l.page = 0
		l.version++
	}
}

// CanNext is false while the next page would start past the last row.
func (l *List[E, ID]) CanNext() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.data == nil {
		return false
	}
	return int64(l.page+1)*int64(l.size) < l.data.TotalElements
}

func (l *List[E, ID]) CanPrev() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page > 0
}

func (l *List[E, ID]) NextPage() bool {
	if !l.CanNext() {
		return false
	}
	return l.SetPage(l.Page() + 1)
}

func (l *List[E, ID]) PrevPage() bool {
	if !l.CanPrev() {
		return false
	}
	return l.SetPage(l.Page() - 1)
}

func (l *List[E, ID]) Sort() []models.SortOrder {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.SortOrder{}, l.sort...)
}

func (l *List[E, ID]) SetSort(sort []models.SortOrder) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sort = append([]models.SortOrder{}, sort...)
	l.version++
}

// CycleSort steps through the sortable columns: ascending, descending,
// then the next column. Past the last column the list is unsorted again.
func (l *List[E, ID]) CycleSort() []models.SortOrder {
	var fields []string
	for _, column := range l.Columns {
		if column.Sort != "" {
			fields = append(fields, column.Sort)
		}
	}

	current := l.Sort()
	next := nextSort(fields, current)
	l.SetSort(next)
	return next
}

func nextSort(fields []string, current []models.SortOrder) []models.SortOrder {
	if len(fields) == 0 {
		return nil
	}
	if len(current) == 0 {
		return []models.SortOrder{{Field: fields[0], Direction: models.SortAscending}}
	}

	order := current[0]
	if order.Direction != models.SortDescending {
		return []models.SortOrder{{Field: order.Field, Direction: models.SortDescending}}
	}

	for i, field := range fields {
		if field == order.Field && i+1 < len(fields) {
			return []models.SortOrder{{Field: fields[i+1], Direction: models.SortAscending}}
		}
	}
	return nil
}

func (l *List[E, ID]) Workspace() primitive.ObjectID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.workspace
}

// SetWorkspace scopes the list to workspace and starts over at page zero.
func (l *List[E, ID]) SetWorkspace(workspace primitive.ObjectID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if workspace == l.workspace {
		return
	}
	l.workspace = workspace
	l.page = 0
	l.data = nil
	l.version++
}

// Create opens the dialog on an empty form.
func (l *List[E, ID]) Create() bool {
	if l.Dialog == nil {
		return false
	}
	l.Dialog.Create()
	return true
}

func (l *List[E, ID]) Edit(entity E) bool {
	if l.Dialog == nil {
		return false
	}
	l.Dialog.Edit(entity)
	return true
}

func (l *List[E, ID]) AskDelete(entity E) {
	l.DeleteDialog.Ask(entity)
}

// Render returns the cells of every row in column order.
func (l *List[E, ID]) Render() [][]Cell {
	rows := l.Rows()
	cells := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		line := make([]Cell, 0, len(l.Columns))
		for _, column := range l.Columns {
			line = append(line, column.Render(row))
		}
		cells = append(cells, line)
	}
	return cells
}
