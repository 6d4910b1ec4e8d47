package dashboard

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	ledgerURL     string
	ledgerToken   string
	governmentID  string
	ledgerTimeout time.Duration

	driver   string // "valkey" or "redis"; empty disables the snapshot cache
	addrs    []string
	password string
	cacheTTL time.Duration

	pageSize int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithLedger enables remote fetches from the benefits ledger at baseURL.
// token is sent as a bearer token when non-empty.
func WithLedger(baseURL, token string) Option {
	return optionFunc(func(c *clientConfig) {
		c.ledgerURL = baseURL
		c.ledgerToken = token
	})
}

// WithGovernment sets the government whose transactions are fetched.
// Without it only vendors are remote-backed.
func WithGovernment(id string) Option {
	return optionFunc(func(c *clientConfig) {
		c.governmentID = id
	})
}

// WithLedgerTimeout bounds each ledger request. Default: 10s.
func WithLedgerTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.ledgerTimeout = d
	})
}

// WithValkey keeps last-good snapshots in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis keeps last-good snapshots in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithSnapshotTTL sets how long a snapshot is kept. Default: 24h.
func WithSnapshotTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithPageSize overrides the page size of every list. Default: 10.
func WithPageSize(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.pageSize = size
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
