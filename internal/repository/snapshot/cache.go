// Package snapshot keeps a last-good copy of each remote list in a
// key-value store so a failed fetch can fall back to it.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/payzee/dashboard/internal/db"
	"github.com/payzee/dashboard/internal/domain/load"
)

// KeyPrefix namespaces snapshot keys in a shared store.
const KeyPrefix = "dashboard:snapshot:"

// store is the consumer interface for the snapshot cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// FetchFunc loads one remote list.
type FetchFunc[T any] func(ctx context.Context) (load.Batch[T], error)

// Cache decorates a FetchFunc: successful fetches are saved, and Fallback
// serves the saved copy after a failure. A nil store disables caching.
type Cache[T any] struct {
	list       string
	inner      FetchFunc[T]
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a snapshot cache for list.
// cacheTotal is a counter vec with labels "list" and "result" ("hit"/"miss"), passed explicitly.
func New[T any](
	list string,
	inner FetchFunc[T],
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cache[T] {
	return &Cache[T]{
		list:       list,
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Load calls the inner fetch and saves the records on success. An empty
// result is not saved, so it never shadows an earlier snapshot. A save
// failure is logged, never returned.
func (c *Cache[T]) Load(ctx context.Context) (load.Batch[T], error) {
	batch, err := c.inner(ctx)
	if err != nil {
		return load.Batch[T]{}, fmt.Errorf("fetch %s: %w", c.list, err)
	}
	if len(batch.Records) > 0 {
		c.put(ctx, batch.Records)
	}
	return batch, nil
}

// Fallback returns the last saved records, if any. An empty snapshot
// counts as a miss.
func (c *Cache[T]) Fallback(ctx context.Context) ([]T, bool) {
	if c.store == nil {
		return nil, false
	}

	data, err := c.store.Get(ctx, c.key())
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to read snapshot", zap.String("list", c.list), zap.Error(err))
		}
		c.inc("miss")
		return nil, false
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warn("Failed to parse snapshot", zap.String("list", c.list), zap.Error(err))
		c.inc("miss")
		return nil, false
	}
	if len(records) == 0 {
		c.inc("miss")
		return nil, false
	}

	c.inc("hit")
	return records, true
}

func (c *Cache[T]) put(ctx context.Context, records []T) {
	if c.store == nil {
		return
	}
	data, err := json.Marshal(records)
	if err != nil {
		c.logger.Warn("Failed to encode snapshot", zap.String("list", c.list), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, c.key(), data, c.ttl); err != nil {
		c.logger.Warn("Failed to save snapshot", zap.String("list", c.list), zap.Error(err))
	}
}

func (c *Cache[T]) key() string {
	return KeyPrefix + c.list
}

func (c *Cache[T]) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(c.list, result).Inc()
	}
}
