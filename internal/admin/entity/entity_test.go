package entity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/client"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

type item struct {
	Id   int
	Name string
}

type fakeFunctions struct {
	items   []item
	queries []Query
	listErr error
	delErr  error
	deleted []int
}

func (f *fakeFunctions) List(ctx context.Context, query Query) (*models.PagedResponse[item], error) {
	f.queries = append(f.queries, query)
	if f.listErr != nil {
		return nil, f.listErr
	}

	start := min(query.Page*query.Size, len(f.items))
	end := min(start+query.Size, len(f.items))
	return models.NewPagedResponse(query.Page, query.Size, int64(len(f.items)), f.items[start:end]), nil
}

func (f *fakeFunctions) Delete(ctx context.Context, id int) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeFunctions) ToID(entity item) int {
	return entity.Id
}

func (f *fakeFunctions) Format(entity item) string {
	return entity.Name
}

func items(n int) []item {
	result := make([]item, n)
	for i := range result {
		result[i] = item{Id: i + 1, Name: fmt.Sprintf("item %d", i+1)}
	}
	return result
}

type itemInput struct {
	Name string `json:"name" validate:"required,min=3,max=10"`
}

type fakeForm struct {
	submitted []Values
	err       error
}

func (f *fakeForm) Fields() []Field {
	return []Field{{Name: "name", Label: "Name", Kind: FieldText, Required: true}}
}

func (f *fakeForm) Load(current *item) Values {
	if current == nil {
		return Values{"name": ""}
	}
	return Values{"name": current.Name}
}

func (f *fakeForm) Submit(ctx context.Context, workspaceId primitive.ObjectID, values Values, current *item) (item, error) {
	if f.err != nil {
		return item{}, f.err
	}
	if err := Validate(itemInput{Name: values.Get("name")}, nil); err != nil {
		return item{}, err
	}
	f.submitted = append(f.submitted, values)

	saved := item{Id: 99, Name: values.Get("name")}
	if current != nil {
		saved.Id = current.Id
	}
	return saved, nil
}

func newTestList(functions *fakeFunctions, form Form[item], notifier Notifier) *List[item, int] {
	l := NewList[item, int](functions, form, notifier, nil)
	l.SetSize(10)
	l.Columns = []Column[item]{
		{Title: "Id", Sort: "id", Render: func(e item) Cell { return Cell{Text: fmt.Sprint(e.Id)} }},
		{Title: "Name", Sort: "name", Render: func(e item) Cell { return Cell{Text: e.Name} }},
		{Title: "Label", Render: func(e item) Cell { return Cell{Text: "-"} }},
	}
	return l
}

func TestListPaging(t *testing.T) {
	functions := &fakeFunctions{items: items(25)}
	l := newTestList(functions, nil, nil)
	ctx := context.Background()

	assert.False(t, l.CanNext())
	assert.True(t, l.Stale())

	require.NoError(t, l.Reload(ctx))
	assert.False(t, l.Stale())
	assert.Equal(t, StatusIdle, l.Status())
	assert.Len(t, l.Rows(), 10)
	assert.EqualValues(t, 25, l.Total())
	assert.Equal(t, 3, l.TotalPages())
	assert.False(t, l.CanPrev())
	assert.True(t, l.CanNext())

	require.True(t, l.NextPage())
	require.NoError(t, l.Reload(ctx))
	require.True(t, l.NextPage())
	require.NoError(t, l.Reload(ctx))

	assert.Equal(t, 2, l.Page())
	assert.Len(t, l.Rows(), 5)
	assert.False(t, l.CanNext())
	assert.False(t, l.NextPage())

	l.SetPage(-3)
	assert.Equal(t, 0, l.Page())
	assert.False(t, l.PrevPage())
}

func TestListExactPageBoundary(t *testing.T) {
	functions := &fakeFunctions{items: items(20)}
	l := newTestList(functions, nil, nil)

	require.NoError(t, l.Reload(context.Background()))
	assert.True(t, l.CanNext())

	require.True(t, l.NextPage())
	require.NoError(t, l.Reload(context.Background()))
	assert.False(t, l.CanNext())
}

func TestListDiscardsStaleResults(t *testing.T) {
	functions := &fakeFunctions{items: items(25)}
	l := newTestList(functions, nil, nil)
	ctx := context.Background()

	first := l.Fetch()
	l.SetPage(2)
	second := l.Fetch()

	secondResult := l.Load(ctx, second)
	firstResult := l.Load(ctx, first)

	assert.True(t, l.Receive(secondResult))
	assert.False(t, l.Receive(firstResult))

	assert.Equal(t, 2, l.Page())
	require.Len(t, l.Rows(), 5)
	assert.Equal(t, 21, l.Rows()[0].Id)
}

func TestListFailureKeepsRows(t *testing.T) {
	functions := &fakeFunctions{items: items(5)}
	notifications := &Notifications{}
	l := newTestList(functions, nil, notifications)
	ctx := context.Background()

	require.NoError(t, l.Reload(ctx))
	require.Len(t, l.Rows(), 5)

	functions.listErr = errors.New("connection refused")
	require.Error(t, l.Reload(ctx))

	assert.Equal(t, StatusFailed, l.Status())
	assert.Len(t, l.Rows(), 5)

	last, ok := notifications.Last()
	require.True(t, ok)
	assert.Equal(t, LevelError, last.Level)
	assert.Equal(t, "connection refused", last.Message)
	assert.False(t, last.Unauthorized)
}

func TestListSendsQueryVerbatim(t *testing.T) {
	functions := &fakeFunctions{items: items(3)}
	l := newTestList(functions, nil, nil)
	workspace := primitive.NewObjectID()

	l.SetWorkspace(workspace)
	l.SetSort([]models.SortOrder{{Field: "name", Direction: models.SortDescending}})
	require.NoError(t, l.Reload(context.Background()))

	require.Len(t, functions.queries, 1)
	query := functions.queries[0]
	assert.Equal(t, workspace, query.WorkspaceId)
	assert.Equal(t, 10, query.Size)
	assert.Equal(t, []models.SortOrder{{Field: "name", Direction: models.SortDescending}}, query.Sort)
}

func TestSetWorkspaceResetsPage(t *testing.T) {
	functions := &fakeFunctions{items: items(25)}
	l := newTestList(functions, nil, nil)

	require.NoError(t, l.Reload(context.Background()))
	require.True(t, l.NextPage())
	l.SetWorkspace(primitive.NewObjectID())

	assert.Equal(t, 0, l.Page())
	assert.Empty(t, l.Rows())
	assert.True(t, l.Stale())
}

func TestCycleSort(t *testing.T) {
	l := newTestList(&fakeFunctions{}, nil, nil)

	assert.Equal(t, []models.SortOrder{{Field: "id", Direction: models.SortAscending}}, l.CycleSort())
	assert.Equal(t, []models.SortOrder{{Field: "id", Direction: models.SortDescending}}, l.CycleSort())
	assert.Equal(t, []models.SortOrder{{Field: "name", Direction: models.SortAscending}}, l.CycleSort())
	assert.Equal(t, []models.SortOrder{{Field: "name", Direction: models.SortDescending}}, l.CycleSort())
	assert.Empty(t, l.CycleSort())
	assert.Empty(t, l.Sort())
}

func TestRender(t *testing.T) {
	functions := &fakeFunctions{items: items(2)}
	l := newTestList(functions, nil, nil)
	require.NoError(t, l.Reload(context.Background()))

	cells := l.Render()
	require.Len(t, cells, 2)
	assert.Equal(t, []Cell{{Text: "2"}, {Text: "item 2"}, {Text: "-"}}, cells[1])
}

func TestDialogCreate(t *testing.T) {
	functions := &fakeFunctions{items: items(2)}
	form := &fakeForm{}
	var propagated []item
	l := NewList[item, int](functions, form, nil, func(e item) { propagated = append(propagated, e) })
	ctx := context.Background()

	require.NoError(t, l.Reload(ctx))
	require.False(t, l.Stale())

	require.True(t, l.Create())
	assert.IsType(t, Creating{}, l.Dialog.State())
	assert.Equal(t, "", l.Dialog.Values()["name"])

	l.Dialog.SetValue("name", "Savings")
	saved, err := l.Dialog.Submit(ctx, primitive.NewObjectID())
	require.NoError(t, err)

	assert.Equal(t, 99, saved.Id)
	assert.False(t, l.Dialog.IsOpen())
	assert.True(t, l.Stale())
	assert.Equal(t, []item{saved}, propagated)
}

func TestDialogEdit(t *testing.T) {
	form := &fakeForm{}
	l := NewList[item, int](&fakeFunctions{}, form, nil, nil)

	l.Edit(item{Id: 7, Name: "Checking"})
	state, ok := l.Dialog.State().(Editing[item])
	require.True(t, ok)
	assert.Equal(t, 7, state.Entity.Id)
	assert.Equal(t, "Checking", l.Dialog.Values()["name"])

	l.Dialog.SetValue("name", "Giro")
	saved, err := l.Dialog.Submit(context.Background(), primitive.NilObjectID)
	require.NoError(t, err)
	assert.Equal(t, item{Id: 7, Name: "Giro"}, saved)
}

func TestDialogValidationKeepsDialogOpen(t *testing.T) {
	form := &fakeForm{}
	l := NewList[item, int](&fakeFunctions{}, form, nil, nil)

	l.Create()
	l.Dialog.SetValue("name", "ab")
	_, err := l.Dialog.Submit(context.Background(), primitive.NilObjectID)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "name")
	assert.True(t, l.Dialog.IsOpen())
	assert.Empty(t, form.submitted)
}

func TestDialogSubmitWhenClosed(t *testing.T) {
	d := NewDialog[item](&fakeForm{}, nil)
	_, err := d.Submit(context.Background(), primitive.NilObjectID)
	assert.ErrorIs(t, err, ErrDialogClosed)
}

func TestDeleteDialog(t *testing.T) {
	functions := &fakeFunctions{items: items(3)}
	l := newTestList(functions, nil, nil)
	ctx := context.Background()
	require.NoError(t, l.Reload(ctx))

	l.AskDelete(l.Rows()[1])
	assert.True(t, l.DeleteDialog.IsOpen())
	assert.Equal(t, "Delete item 2?", l.DeleteDialog.Prompt())

	l.DeleteDialog.Cancel()
	assert.False(t, l.DeleteDialog.IsOpen())
	assert.ErrorIs(t, l.DeleteDialog.Confirm(ctx), ErrNothingToDelete)

	l.AskDelete(l.Rows()[1])
	require.NoError(t, l.DeleteDialog.Confirm(ctx))
	assert.Equal(t, []int{2}, functions.deleted)
	assert.True(t, l.Stale())
}

func TestDeleteDialogRefused(t *testing.T) {
	functions := &fakeFunctions{items: items(3)}
	functions.delErr = &client.APIError{Status: http.StatusConflict, TranslationKey: "error.delete.dependents"}
	l := newTestList(functions, nil, nil)
	ctx := context.Background()
	require.NoError(t, l.Reload(ctx))

	l.AskDelete(l.Rows()[0])
	err := l.DeleteDialog.Confirm(ctx)
	assert.True(t, client.IsDependents(err))
	assert.False(t, l.DeleteDialog.IsOpen())
	assert.False(t, l.Stale())
}

func TestClassify(t *testing.T) {
	unauthorized := Classify(&client.APIError{Status: http.StatusUnauthorized, TranslationKey: "error.unauthorized"})
	assert.True(t, unauthorized.Unauthorized)
	assert.Equal(t, "Please log in", unauthorized.Message)

	conflict := Classify(fmt.Errorf("delete: %w", &client.APIError{Status: http.StatusConflict, TranslationKey: "error.delete.dependents"}))
	assert.False(t, conflict.Unauthorized)
	assert.Equal(t, "The entry is used by other entries and cannot be deleted", conflict.Message)

	validation := &ValidationError{}
	validation.Add("name", "name is required")
	validation.Add("code", "code must be at least 3 characters in length")
	validation.Add("name", "ignored")
	assert.Equal(t, "code must be at least 3 characters in length; name is required", Classify(validation).Message)

	assert.Equal(t, "boom", Classify(errors.New("boom")).Message)
}
