package entity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrDialogClosed = errors.New("dialog is closed")

// DialogState is one of Closed, Creating or Editing.
type DialogState interface {
	dialogState()
}

type Closed struct{}

type Creating struct{}

type Editing[E any] struct {
	Entity E
}

func (Closed) dialogState()     {}
func (Creating) dialogState()   {}
func (Editing[E]) dialogState() {}

// Dialog mounts a form for creating or editing one entity. It has no logic
// of its own: the form validates and sends, the dialog closes on success
// and hands the saved entity to onSubmit.
type Dialog[E any] struct {
	Form     Form[E]
	OnSubmit func(E)

	mu     sync.Mutex
	state  DialogState
	values Values
}

func NewDialog[E any](form Form[E], onSubmit func(E)) *Dialog[E] {
	return &Dialog[E]{Form: form, OnSubmit: onSubmit, state: Closed{}}
}

func (d *Dialog[E]) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Dialog[E]) IsOpen() bool {
	_, closed := d.State().(Closed)
	return !closed
}

func (d *Dialog[E]) Create() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = Creating{}
	d.values = d.Form.Load(nil)
}

func (d *Dialog[E]) Edit(entity E) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = Editing[E]{Entity: entity}
	d.values = d.Form.Load(&entity)
}

func (d *Dialog[E]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = Closed{}
	d.values = nil
}

func (d *Dialog[E]) Values() Values {
	d.mu.Lock()
	defer d.mu.Unlock()

	values := Values{}
	for name, value := range d.values {
		values[name] = value
	}
	return values
}

func (d *Dialog[E]) SetValue(name string, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.values == nil {
		d.values = Values{}
	}
	d.values[name] = value
}

// Submit sends the form. The dialog stays open on any error.
func (d *Dialog[E]) Submit(ctx context.Context, workspaceId primitive.ObjectID) (E, error) {
	var zero E

	d.mu.Lock()
	state := d.state
	values := Values{}
	for name, value := range d.values {
		values[name] = value
	}
	d.mu.Unlock()

	var current *E
	switch s := state.(type) {
	case Closed:
		return zero, ErrDialogClosed
	case Creating:
	case Editing[E]:
		entity := s.Entity
		current = &entity
	default:
		return zero, fmt.Errorf("unknown dialog state %T", state)
	}

	saved, err := d.Form.Submit(ctx, workspaceId, values, current)
	if err != nil {
		return zero, err
	}

	d.Close()
	if d.OnSubmit != nil {
		d.OnSubmit(saved)
	}
	return saved, nil
}

var ErrNothingToDelete = errors.New("no entity selected for deletion")

// DeleteDialog asks for confirmation before deleting. Deletion is
// immediate once confirmed.
type DeleteDialog[E any, ID comparable] struct {
	Functions Functions[E, ID]
	OnDeleted func(E)

	mu     sync.Mutex
	target *E
}

func NewDeleteDialog[E any, ID comparable](functions Functions[E, ID], onDeleted func(E)) *DeleteDialog[E, ID] {
	return &DeleteDialog[E, ID]{Functions: functions, OnDeleted: onDeleted}
}

func (d *DeleteDialog[E, ID]) Ask(entity E) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.target = &entity
}

func (d *DeleteDialog[E, ID]) Target() (E, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.target == nil {
		var zero E
		return zero, false
	}
	return *d.target, true
}

func (d *DeleteDialog[E, ID]) IsOpen() bool {
	_, ok := d.Target()
	return ok
}

// Prompt is the confirmation question for the pending entity.
func (d *DeleteDialog[E, ID]) Prompt() string {
	target, ok := d.Target()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Delete %s?", d.Functions.Format(target))
}

func (d *DeleteDialog[E, ID]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.target = nil
}

// Confirm deletes the pending entity and closes the dialog, also when the
// server refuses.
func (d *DeleteDialog[E, ID]) Confirm(ctx context.Context) error {
	d.mu.Lock()
	target := d.target
	d.target = nil
	d.mu.Unlock()

	if target == nil {
		return ErrNothingToDelete
	}

	if err := d.Functions.Delete(ctx, d.Functions.ToID(*target)); err != nil {
		return err
	}

	if d.OnDeleted != nil {
		d.OnDeleted(*target)
	}
	return nil
}
