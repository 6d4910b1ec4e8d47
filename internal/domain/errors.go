package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
	// ErrUnknownList signals a list name that has no definition.
	ErrUnknownList = errors.New("unknown list")
	// ErrInvalidQuery signals a list query naming undeclared fields or malformed values.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidRecord signals a record rejected at the data boundary.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidAction signals an unrecognized view-state action.
	ErrInvalidAction = errors.New("invalid action")
	// ErrLedgerUnavailable signals a failed call to the benefits-ledger service.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	// ErrNotRemote signals a reload request for a list with no remote source.
	ErrNotRemote = errors.New("list has no remote source")
)

// FieldError wraps ErrInvalidRecord with the offending field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRecord.Error(), e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidRecord }

// NewFieldError creates a record validation error for a single field.
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
