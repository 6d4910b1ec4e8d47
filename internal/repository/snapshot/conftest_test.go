package snapshot

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/payzee/dashboard/internal/db"
	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/vendor"
)

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

type fakeFetch struct {
	batch load.Batch[vendor.Vendor]
	err   error
	calls int
}

func (f *fakeFetch) fetch(_ context.Context) (load.Batch[vendor.Vendor], error) {
	f.calls++
	return f.batch, f.err
}

func newTestCache(t *testing.T, inner *fakeFetch) (*Cache[vendor.Vendor], *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	c := New[vendor.Vendor]("vendors", inner.fetch, ms, time.Hour, nil, zap.NewNop())
	return c, ms
}
