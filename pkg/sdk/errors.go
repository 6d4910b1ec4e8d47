package dashboard

import "github.com/payzee/dashboard/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrUnknownList       = domain.ErrUnknownList
	ErrInvalidQuery      = domain.ErrInvalidQuery
	ErrInvalidRecord     = domain.ErrInvalidRecord
	ErrInvalidAction     = domain.ErrInvalidAction
	ErrLedgerUnavailable = domain.ErrLedgerUnavailable
	ErrNotRemote         = domain.ErrNotRemote
)

// FieldError names the field that failed validation. Use errors.As().
type FieldError = domain.FieldError
