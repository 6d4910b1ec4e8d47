package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/payzee/dashboard/internal/domain"
)

// Call outcomes, coarse enough to alert on.
const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeLedger   = "ledger_unavailable"
	outcomeError    = "error"
)

// callMetrics counts SDK calls per operation and list.
type callMetrics struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

func newCallMetrics(reg prometheus.Registerer) (*callMetrics, error) {
	calls, err := shared(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Subsystem: "sdk",
		Name:      "calls_total",
		Help:      "SDK calls by operation, list and outcome.",
	}, []string{"operation", "list", "outcome"}))
	if err != nil {
		return nil, err
	}
	latency, err := shared(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Subsystem: "sdk",
		Name:      "call_duration_seconds",
		Help:      "SDK call latency. Views are in-memory, reloads wait on the ledger.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"operation", "list"}))
	if err != nil {
		return nil, err
	}
	return &callMetrics{calls: calls, latency: latency}, nil
}

// shared registers c, or returns the collector a previous client already
// registered under the same name.
func shared[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return c, fmt.Errorf("dashboard: register metric: %w", err)
	}
	existing, ok := are.ExistingCollector.(C)
	if !ok {
		return c, fmt.Errorf("dashboard: metric registered with type %T", are.ExistingCollector)
	}
	return existing, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrInvalidQuery), errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrInvalidRecord), errors.Is(err, domain.ErrNotRemote):
		return outcomeInvalid
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownList):
		return outcomeNotFound
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return outcomeLedger
	}
	return outcomeError
}

// observer reports SDK calls to the optional logger and metrics.
type observer struct {
	logger  *slog.Logger
	metrics *callMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	o := &observer{logger: logger}
	if reg != nil {
		m, err := newCallMetrics(reg)
		if err != nil {
			return nil, err
		}
		o.metrics = m
	}
	return o, nil
}

// track starts timing a call and returns the function that records it:
//
//	defer c.obs.track("view", list)(&err)
func (o *observer) track(op, list string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		if o == nil {
			return
		}
		var err error
		if errp != nil {
			err = *errp
		}
		dur := time.Since(start)
		result := outcome(err)

		if o.metrics != nil {
			o.metrics.calls.WithLabelValues(op, list, result).Inc()
			o.metrics.latency.WithLabelValues(op, list).Observe(dur.Seconds())
		}
		if o.logger == nil {
			return
		}

		attrs := []slog.Attr{
			slog.String("op", op),
			slog.String("list", list),
			slog.Duration("duration", dur),
		}
		if err == nil {
			o.logger.LogAttrs(context.Background(), slog.LevelDebug, "dashboard call", attrs...)
			return
		}
		attrs = append(attrs, slog.String("outcome", result), slog.Any("error", err))
		o.logger.LogAttrs(context.Background(), slog.LevelWarn, "dashboard call failed", attrs...)
	}
}
