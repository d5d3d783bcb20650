package resources

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/admin/entity"
	"github.com/familyledger/finance-backend/internal/client"
	"github.com/familyledger/finance-backend/internal/domain/models"
)

const (
	dateLayout        = models.DateLayout
	dateTimeLayout    = "2006-01-02 15:04"
	dateSecondsLayout = "2006-01-02 15:04:05"
)

// Clock shows and reads dates in Location, time.Local when nil. Now
// defaults to time.Now.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func (c Clock) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Today is the current time in Location.
func (c Clock) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().In(c.location())
}

func toQuery(q entity.Query) client.Query {
	return client.Query{Page: q.Page, Size: q.Size, Sort: q.Sort}
}

// FormatAmount renders two decimals and flags negative amounts.
func FormatAmount(amount decimal.Decimal) entity.Cell {
	return entity.Cell{Text: amount.StringFixed(2), Negative: amount.IsNegative()}
}

func (c Clock) FormatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.In(c.location()).Format(dateLayout)
}

// FormatDateTime omits the time at midnight and the seconds when zero.
// Finer precision than seconds is not shown.
func (c Clock) FormatDateTime(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	local := date.In(c.location())
	switch {
	case local.Hour() == 0 && local.Minute() == 0 && local.Second() == 0:
		return local.Format(dateLayout)
	case local.Second() == 0:
		return local.Format(dateTimeLayout)
	}
	return local.Format(dateSecondsLayout)
}

func (c Clock) formatOptionalDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return c.FormatDate(*date)
}

func (c Clock) formatOptionalDateTime(date *time.Time) string {
	if date == nil {
		return ""
	}
	return c.FormatDateTime(*date)
}

func formatId(id *primitive.ObjectID) string {
	if id == nil || id.IsZero() {
		return ""
	}
	return id.Hex()
}

func text(value string) entity.Cell {
	return entity.Cell{Text: value}
}

// referenceId prefers the explicit id and falls back to the id of the
// expanded reference.
func referenceId(id *primitive.ObjectID, expanded *primitive.ObjectID) string {
	if value := formatId(id); value != "" {
		return value
	}
	return formatId(expanded)
}

func parseOptionalId(values entity.Values, field string, errs *entity.ValidationError) *primitive.ObjectID {
	raw := values.Get(field)
	if raw == "" {
		return nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		errs.Add(field, field+" must be a valid id")
		return nil
	}
	return &id
}

func parseId(values entity.Values, field string, errs *entity.ValidationError) primitive.ObjectID {
	id := parseOptionalId(values, field, errs)
	if id == nil {
		errs.Add(field, field+" is a required field")
		return primitive.NilObjectID
	}
	return *id
}

func parseDecimal(values entity.Values, field string, errs *entity.ValidationError) *decimal.Decimal {
	raw := strings.ReplaceAll(values.Get(field), ",", ".")
	if raw == "" {
		return nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		errs.Add(field, field+" must be a number")
		return nil
	}
	return &amount
}

// parseDate reads a day or a day with a time, in Location.
func (c Clock) parseDate(values entity.Values, field string, errs *entity.ValidationError) *time.Time {
	raw := values.Get(field)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{dateSecondsLayout, dateTimeLayout, dateLayout, time.RFC3339Nano} {
		if date, err := time.ParseInLocation(layout, raw, c.location()); err == nil {
			return &date
		}
	}
	errs.Add(field, field+" must be a date like 2026-01-31")
	return nil
}

// keepDate parses field unless it still shows current as Load wrote it, in
// which case current is returned untouched.
func (c Clock) keepDate(values entity.Values, field string, errs *entity.ValidationError, current *time.Time) *time.Time {
	if current != nil && values.Get(field) == c.formatOptionalDateTime(current) {
		kept := *current
		return &kept
	}
	return c.parseDate(values, field, errs)
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func choices[T ~string](values []T) []string {
	result := make([]string, len(values))
	for i, value := range values {
		result[i] = string(value)
	}
	return result
}
