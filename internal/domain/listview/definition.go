// Package listview is the list-view engine shared by every dashboard table:
// filter, then search, then paginate, then render.
package listview

import (
	"fmt"
	"slices"
)

// DefaultPageSize is the page size of every dashboard table.
const DefaultPageSize = 10

// Definition describes one list: which fields can be filtered, which are
// searched, and how many rows a page holds.
type Definition struct {
	Name         string
	FilterFields []string
	SearchFields []string
	PageSize     int
	Remote       bool
}

// Validate checks the definition for correctness.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("list name is required")
	}
	if d.PageSize <= 0 {
		return fmt.Errorf("list %s: page size must be positive, got %d", d.Name, d.PageSize)
	}
	if len(d.SearchFields) == 0 {
		return fmt.Errorf("list %s: at least one search field is required", d.Name)
	}
	for i, f := range d.FilterFields {
		if f == "" {
			return fmt.Errorf("list %s: empty filter field", d.Name)
		}
		if slices.Contains(d.FilterFields[:i], f) {
			return fmt.Errorf("list %s: duplicate filter field %q", d.Name, f)
		}
	}
	return nil
}

// HasFilter reports whether field is filterable on this list.
func (d Definition) HasFilter(field string) bool {
	return slices.Contains(d.FilterFields, field)
}

// EmptyMessage is shown in place of the table body when nothing matches.
func (d Definition) EmptyMessage(query string) string {
	if query == "" {
		return fmt.Sprintf("No %s found", d.Name)
	}
	return fmt.Sprintf("No %s found matching %q", d.Name, query)
}
