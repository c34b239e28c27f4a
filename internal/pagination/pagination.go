// Package pagination slices an in-memory list into pages.
package pagination

// Paginate returns the items on currentPage (1-indexed) when the list is split
// into pages of pageSize. A page past the end yields an empty slice.
//
// Callers are expected to pass positive values. A non-positive pageSize gives an
// empty page and a start before the first item is clamped to zero.
func Paginate[T any](items []T, pageSize, currentPage int) []T {
	if pageSize <= 0 {
		return []T{}
	}

	start := (currentPage - 1) * pageSize
	end := start + pageSize
	start = max(start, 0)
	end = min(end, len(items))

	if start >= end {
		return []T{}
	}

	page := make([]T, end-start)
	copy(page, items[start:end])
	return page
}

// TotalPages returns ceil(totalItems / pageSize), or 0 for an empty list.
// A non-positive pageSize returns 0.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}
