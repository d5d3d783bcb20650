package entity

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/presentation/helpers"
)

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNotes
	FieldPassword
	FieldDecimal
	FieldDate
	FieldDateTime
	FieldChoice
	FieldReference
	FieldCron
)

type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	// Choices lists the accepted values of FieldChoice fields.
	Choices []string
	// Reference names the resource a FieldReference points to.
	Reference string
}

// Values is the editable representation of an entity, keyed by field name.
type Values map[string]string

func (v Values) Get(name string) string {
	return strings.TrimSpace(v[name])
}

// Form maps an entity to editable values and back. Submit validates the
// values before any request and creates the entity when current is nil,
// otherwise it updates current.
type Form[E any] interface {
	Fields() []Field
	Load(current *E) Values
	Submit(ctx context.Context, workspaceId primitive.ObjectID, values Values, current *E) (E, error)
}

// ValidationError holds one message per invalid field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, e.Fields[name])
	}
	return strings.Join(messages, "; ")
}

// Add records message for field, keeping the first message per field.
func (e *ValidationError) Add(field string, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// Err returns nil when no field failed.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Validate checks the validate tags of input with the server's validator,
// so both sides agree on the constraints and messages.
func Validate(input any, parsed *ValidationError) error {
	if parsed == nil {
		parsed = &ValidationError{}
	}

	if err := helpers.Validator().Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate: %w", err)
		}
		trans := helpers.Translator()
		for _, fe := range validationErrors {
			parsed.Add(fe.Field(), fe.Translate(trans))
		}
	}

	return parsed.Err()
}
