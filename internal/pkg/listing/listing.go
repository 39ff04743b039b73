// Package listing implements the backoffice list contract: case-insensitive
// substring search over a fixed set of fields, followed by 1-indexed slice
// pagination over the fully fetched collection.
package listing

import (
	"math"
	"strings"
)

// Field extracts one searchable text value from an item. Nested values
// (a user's country name, a cellule's leader email) are plain extractors.
type Field[T any] func(T) string

// Page is one page of a filtered collection plus its pagination meta.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// Filter returns the items whose configured fields contain the search term.
// The match is case-insensitive; an empty term matches everything. An item
// matches if ANY of its fields contains the term.
func Filter[T any](items []T, term string, fields ...Field[T]) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		// Copy so callers can never mutate the snapshot through the result.
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Paginate slices a filtered collection into its 1-indexed page.
// TotalPages is ceil(len/size); a page beyond the last yields an empty
// item list with CurrentPage clamped to the last page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := int(math.Ceil(float64(total) / float64(size)))

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}
	if totalPages == 0 {
		currentPage = 1
	}

	start := (currentPage - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:       items[start:end],
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  total,
	}
}

// Default page sizes observed per resource.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	UsersPageSize      = 20
	PaysPageSize       = 20
	CategoriesPageSize = 10
	CellulesPageSize   = 10
	ActivitesPageSize  = 10
)
