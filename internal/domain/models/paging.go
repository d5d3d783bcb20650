package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortDirection accepts the short and the long spelling in any case
// ("asc", "ASC", "Ascending", ...).
func ParseSortDirection(value string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", value)
}

func (d *SortDirection) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSortDirection(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type SortOrder struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

type Pagination struct {
	Page int
	Size int
	Sort []SortOrder
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 500
)

type PagedResponse[T any] struct {
	Page          int   `json:"page"`
	PageSize      int   `json:"pageSize"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Data          []T   `json:"data"`
}

func NewPagedResponse[T any](page int, size int, total int64, data []T) *PagedResponse[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	}

	return &PagedResponse[T]{
		Page:          page,
		PageSize:      size,
		TotalPages:    totalPages,
		TotalElements: total,
		Data:          data,
	}
}

// HasNext reports whether a page after the current one exists.
func (p *PagedResponse[T]) HasNext() bool {
	return int64(p.Page+1)*int64(p.PageSize) < p.TotalElements
}

// SortFields maps the json name of a sortable field to its stored name.
type SortFields map[string]string

func (f SortFields) Resolve(field string) (string, bool) {
	name, ok := f[field]
	return name, ok
}
