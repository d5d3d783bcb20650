package client

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

// Query selects one page of a list. Sort orders are sent verbatim, one
// sort[] parameter each.
type Query struct {
	Page int
	Size int
	Sort []models.SortOrder
}

func (q Query) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(max(q.Page, 0)))
	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}
	for _, order := range q.Sort {
		data, _ := json.Marshal(order)
		values.Add("sort[]", string(data))
	}
	return values
}
