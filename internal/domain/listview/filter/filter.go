package filter

import (
	"fmt"

	"github.com/payzee/dashboard/internal/domain/record"
)

// All is the sentinel filter value that accepts every record.
const All = "all"

// Spec is an exact-match constraint on one record field.
type Spec struct {
	field string
	value string
}

// New validates and creates a filter Spec. An empty value means All.
func New(field, value string) (Spec, error) {
	if field == "" {
		return Spec{}, fmt.Errorf("filter field is required")
	}
	if value == "" {
		value = All
	}
	return Spec{field: field, value: value}, nil
}

// Any creates a Spec for field that accepts every record.
func Any(field string) Spec {
	return Spec{field: field, value: All}
}

// Field returns the constrained field name.
func (s Spec) Field() string { return s.field }

// Value returns the accepted value, or All.
func (s Spec) Value() string { return s.value }

// IsAll reports whether the spec places no constraint.
func (s Spec) IsAll() bool { return s.value == All }

// Matches reports whether r passes the spec. String fields compare
// case-insensitively; array fields pass when any element matches.
func (s Spec) Matches(r record.Record) bool {
	if s.IsAll() {
		return true
	}
	for _, el := range r.Field(s.field).Elements() {
		if record.EqualFold(el, s.value) {
			return true
		}
	}
	return false
}

// MatchesAll reports whether r passes every spec (logical AND).
func MatchesAll(r record.Record, specs []Spec) bool {
	for _, s := range specs {
		if !s.Matches(r) {
			return false
		}
	}
	return true
}
