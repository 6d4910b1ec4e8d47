package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Ellipsis is the rendered form of a gap marker in the page list.
const Ellipsis = "..."

// Item is either a clickable page number or a non-interactive ellipsis.
type Item struct {
	number   int
	ellipsis bool
}

// PageItem creates a page-number item.
func PageItem(n int) Item { return Item{number: n} }

// Gap creates an ellipsis item.
func Gap() Item { return Item{ellipsis: true} }

// Number returns the page number, or 0 for an ellipsis.
func (i Item) Number() int { return i.number }

// IsEllipsis reports whether the item is a gap marker.
func (i Item) IsEllipsis() bool { return i.ellipsis }

func (i Item) String() string {
	if i.ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(i.number)
}

// MarshalJSON renders pages as numbers and gaps as "...".
func (i Item) MarshalJSON() ([]byte, error) {
	if i.ellipsis {
		return json.Marshal(Ellipsis)
	}
	return json.Marshal(i.number)
}

// UnmarshalJSON accepts a page number or "...".
func (i *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != Ellipsis {
			return fmt.Errorf("invalid page item %q", s)
		}
		*i = Gap()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = PageItem(n)
	return nil
}

// PageNumbers returns the page buttons for current out of total pages.
// Up to MaxVisiblePages pages are listed in full. Otherwise a window starting
// at max(1, current-2) is shown, with the first and last pages pinned and an
// ellipsis wherever pages are skipped.
func PageNumbers(current, total int) []Item {
	items := make([]Item, 0, MaxVisiblePages+4)

	if total <= MaxVisiblePages {
		for i := 1; i <= total; i++ {
			items = append(items, PageItem(i))
		}
		return items
	}

	start := max(1, current-MaxVisiblePages/2)
	end := min(total, start+MaxVisiblePages-1)

	if start > 1 {
		items = append(items, PageItem(1))
		if start > 2 {
			items = append(items, Gap())
		}
	}

	for i := start; i <= end; i++ {
		items = append(items, PageItem(i))
	}

	if end < total {
		if end < total-1 {
			items = append(items, Gap())
		}
		items = append(items, PageItem(total))
	}

	return items
}
