// Package pagination slices filtered collections into fixed-size pages and
// computes the compact page-button list shown under a table.
package pagination

// MaxVisiblePages is the width of the page-number window.
const MaxVisiblePages = 5

// Page is one page of a filtered collection.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// TotalPages returns ceil(n/size), or 0 when n or size is not positive.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns items[(page-1)*size : page*size]. A page outside
// [1, TotalPages] yields no items; the page number is never corrected.
func Paginate[T any](items []T, size, page int) Page[T] {
	p := Page[T]{
		Items:      []T{},
		Number:     page,
		Size:       size,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), size),
	}
	if page < 1 || page > p.TotalPages {
		return p
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	p.Items = items[start:end]
	return p
}

// HasPrev reports whether the "previous" control is enabled.
func HasPrev(current int) bool {
	return current > 1
}

// HasNext reports whether the "next" control is enabled.
func HasNext(current, total int) bool {
	return total > 0 && current < total
}
