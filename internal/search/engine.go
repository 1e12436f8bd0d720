package search

import (
	"sort"
	"strings"
)

// PageSort carries the shared sort/pagination parameters of every
// search kind. Direction "desc" (any case) reverses the comparator;
// anything else sorts ascending.
type PageSort struct {
	SortBy        string
	SortDirection string
	Limit         int
	Offset        int
}

func filterList[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// sortAndPaginate sorts a copy of items with a stable sort, then applies
// offset/limit. An offset past the end yields an empty slice, never an
// error; limit <= 0 yields an empty slice.
func sortAndPaginate[T any](items []T, less func(a, b T) bool, page PageSort) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	if strings.EqualFold(page.SortDirection, "desc") {
		forward := less
		less = func(a, b T) bool { return forward(b, a) }
	}
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(sorted) {
		return []T{}
	}
	sorted = sorted[offset:]

	if page.Limit <= 0 {
		return []T{}
	}
	if page.Limit < len(sorted) {
		sorted = sorted[:page.Limit]
	}
	return sorted
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
