package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/familyledger/finance-backend/internal/domain/models"
	presentationProtocols "github.com/familyledger/finance-backend/internal/presentation/protocols"
)

// GetPagination reads page, size and the repeated sort[] parameters. Every
// sort entry is a json object {"field": ..., "direction": ...} whose field
// must be one of fields.
func GetPagination(urlQueries url.Values, fields models.SortFields) (*models.Pagination, *presentationProtocols.HttpResponse) {
	pagination := &models.Pagination{Page: 0, Size: models.DefaultPageSize}

	if value := urlQueries.Get("page"); value != "" {
		page, err := strconv.Atoi(value)
		if err != nil || page < 0 {
			return nil, CreateErrorResponse(http.StatusBadRequest, KeyPaginationInvalid, "page must be a non-negative integer")
		}
		pagination.Page = page
	}

	if value := urlQueries.Get("size"); value != "" {
		size, err := strconv.Atoi(value)
		if err != nil || size < 1 || size > models.MaxPageSize {
			return nil, CreateErrorResponse(http.StatusBadRequest, KeyPaginationInvalid,
				fmt.Sprintf("size must be between 1 and %d", models.MaxPageSize))
		}
		pagination.Size = size
	}

	rawSort := append([]string{}, urlQueries["sort[]"]...)
	rawSort = append(rawSort, urlQueries["sort"]...)
	for _, raw := range rawSort {
		var order models.SortOrder
		if err := json.Unmarshal([]byte(raw), &order); err != nil {
			return nil, CreateErrorResponse(http.StatusBadRequest, KeySortInvalid, fmt.Sprintf("invalid sort order %s", raw))
		}
		if _, ok := fields.Resolve(order.Field); !ok {
			return nil, CreateErrorResponse(http.StatusBadRequest, KeySortInvalid, fmt.Sprintf("cannot sort by %q", order.Field))
		}
		if order.Direction == "" {
			order.Direction = models.SortAscending
		}
		pagination.Sort = append(pagination.Sort, order)
	}

	return pagination, nil
}
