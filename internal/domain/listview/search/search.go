package search

import (
	"fmt"
	"strings"

	"github.com/payzee/dashboard/internal/domain/record"
)

// MaxQueryLength is the maximum accepted search query length in bytes.
const MaxQueryLength = 256

// Spec is a free-text substring constraint over a fixed set of fields.
type Spec struct {
	raw    string
	folded string
	fields []string
}

// New validates and creates a search Spec. The query is trimmed and
// case-folded; an empty query matches every record.
func New(query string, fields []string) (Spec, error) {
	q := strings.TrimSpace(query)
	if len(q) > MaxQueryLength {
		return Spec{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if q != "" && len(fields) == 0 {
		return Spec{}, fmt.Errorf("at least one search field is required")
	}
	fs := make([]string, len(fields))
	copy(fs, fields)
	return Spec{raw: q, folded: record.Fold(q), fields: fs}, nil
}

// Query returns the trimmed query as entered.
func (s Spec) Query() string { return s.raw }

// Fields returns the searched field names.
func (s Spec) Fields() []string { return s.fields }

// IsEmpty reports whether the spec is a no-op.
func (s Spec) IsEmpty() bool { return s.folded == "" }

// Matches reports whether the query is a substring of any designated field,
// or of any element of an array-valued field.
func (s Spec) Matches(r record.Record) bool {
	if s.IsEmpty() {
		return true
	}
	for _, f := range s.fields {
		for _, el := range r.Field(f).Elements() {
			if strings.Contains(record.Fold(el), s.folded) {
				return true
			}
		}
	}
	return false
}
