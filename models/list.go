// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Pagination defaults applied when the request omits page or limit, or
// supplies a non-numeric or non-positive value.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Reserved query keys that are never treated as per-field filters.
const (
	QueryKeyPage   = "page"
	QueryKeyLimit  = "limit"
	QueryKeySearch = "search"
)

// ListQuery is the request-scoped listing contract shared by every entity.
type ListQuery struct {
	// Page is 1-based.
	Page int

	// Limit is the page size.
	Limit int

	// Search is an optional free-text term matched against the entity's
	// searchable fields.
	Search string

	// Filters maps a request key to its raw value. Keys outside the entity's
	// allow-list are ignored by the store.
	Filters map[string]string
}

// ParseListQuery extracts a [ListQuery] from URL query values.
// Empty filter values are dropped.
func ParseListQuery(values url.Values) ListQuery {
	query := ListQuery{
		Page:    positiveIntOr(values.Get(QueryKeyPage), DefaultPage),
		Limit:   positiveIntOr(values.Get(QueryKeyLimit), DefaultLimit),
		Search:  strings.TrimSpace(values.Get(QueryKeySearch)),
		Filters: make(map[string]string, len(values)),
	}

	for key, vals := range values {
		switch key {
		case QueryKeyPage, QueryKeyLimit, QueryKeySearch:
			continue
		}
		if len(vals) == 0 {
			continue
		}
		if v := strings.TrimSpace(vals[0]); v != "" {
			query.Filters[key] = v
		}
	}

	return query
}

// WithFilter returns a copy of q with the given filter set.
func (q ListQuery) WithFilter(key, value string) ListQuery {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[key] = value
	q.Filters = filters
	return q
}

// Offset returns the number of records to skip for the current page.
// It saturates at math.MaxInt64, the largest OFFSET PostgreSQL accepts, so a
// page far past the end yields an empty page instead of wrapping around.
func (q ListQuery) Offset() uint64 {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	skipped, limit := uint64(q.Page-1), uint64(q.Limit)
	if skipped > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return skipped * limit
}

// ListResult is the response payload of a list operation.
type ListResult[T any] struct {
	Results []T `json:"results"`

	// Total counts every matching record regardless of pagination.
	Total int `json:"total"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
