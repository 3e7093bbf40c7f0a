// Package paging parses page/limit query parameters for offset pagination.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the caller does not supply one.
const DefaultLimit = 10

// MaxLimit caps caller-supplied page sizes.
const MaxLimit = 100

// Parse extracts 1-based "page" and "limit" query parameters, applying
// defaults and the MaxLimit cap. Missing or invalid values fall back to
// page 1 and DefaultLimit.
func Parse(r *http.Request) (page, limit int) {
	page = 1
	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			page = n
		}
	}

	limit = DefaultLimit
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			limit = n
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Skip returns the number of documents to skip for the given page and limit.
func Skip(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}
