package health

import (
	"context"

	"github.com/payzee/dashboard/internal/domain/load"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the service answers from fallback data or without its cache.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckLoading indicates a remote list whose fetch is in flight.
	CheckLoading CheckResult = "loading"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	cache  CachePinger
	lists  LoadReporter
	remote []string
}

// New creates a Service. cache can be nil when the snapshot cache is
// disabled; remote names the lists backed by the ledger.
func New(cache CachePinger, lists LoadReporter, remote []string) *Service {
	return &Service{cache: cache, lists: lists, remote: remote}
}

// Check runs health checks against all components. A remote list counts
// as failed when its last fetch failed.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	states := s.lists.LoadStates()
	for _, name := range s.remote {
		switch states[name].Phase {
		case load.Failed:
			checks["ledger:"+name] = CheckError
		case load.Loading:
			checks["ledger:"+name] = CheckLoading
		default:
			checks["ledger:"+name] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
