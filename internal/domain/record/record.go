// Package record defines the field-level view of a list row shared by the
// filter, search and render stages of the list-view engine.
package record

import (
	"strings"

	"golang.org/x/text/cases"
)

// Record is one row of a list. Field returns Missing for unknown names.
type Record interface {
	Key() string
	Field(name string) Value
}

// Value is a scalar or list-valued field. The zero Value is Missing.
type Value struct {
	scalar  string
	list    []string
	isList  bool
	present bool
}

// Missing is the value of an absent field; it renders blank.
var Missing = Value{}

// String creates a scalar value.
func String(s string) Value {
	return Value{scalar: s, present: true}
}

// List creates an array value. The slice is copied.
func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{list: cp, isList: true, present: true}
}

// Optional creates a scalar value from a nullable string.
func Optional(s *string) Value {
	if s == nil {
		return Missing
	}
	return String(*s)
}

// Scalar returns the scalar form; lists are joined with ", ".
func (v Value) Scalar() string {
	if v.isList {
		return strings.Join(v.list, ", ")
	}
	return v.scalar
}

// Elements returns the array elements, or the scalar as a single element.
// Missing yields nil; an empty list yields an empty non-nil slice.
func (v Value) Elements() []string {
	if !v.present {
		return nil
	}
	if v.isList {
		return v.list
	}
	return []string{v.scalar}
}

// Fold returns the case-folded form of s used for all case-insensitive
// comparisons in the engine.
func Fold(s string) string {
	// cases.Caser is stateful, so one per call.
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Fold.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
