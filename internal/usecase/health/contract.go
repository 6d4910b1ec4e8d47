package health

import (
	"context"

	"github.com/payzee/dashboard/internal/domain/load"
)

// CachePinger checks snapshot cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// LoadReporter exposes the remote-fetch state of every list.
type LoadReporter interface {
	LoadStates() map[string]load.State
}
