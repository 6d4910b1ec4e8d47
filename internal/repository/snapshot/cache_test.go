package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/vendor"
)

func TestLoad_SavesSnapshot(t *testing.T) {
	inner := &fakeFetch{batch: load.Batch[vendor.Vendor]{
		Records:  []vendor.Vendor{{ID: "V-1", Name: "Seed Bank", Categories: []string{"Agriculture"}}},
		Rejected: 2,
	}}
	c, ms := newTestCache(t, inner)

	var savedKey string
	var savedTTL time.Duration
	var saved []byte
	ms.setFn = func(_ context.Context, key string, value []byte, ttl time.Duration) error {
		savedKey, saved, savedTTL = key, value, ttl
		return nil
	}

	batch, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Records) != 1 || batch.Rejected != 2 {
		t.Fatalf("unexpected batch: %+v", batch)
	}
	if savedKey != KeyPrefix+"vendors" {
		t.Errorf("unexpected key %q", savedKey)
	}
	if savedTTL != time.Hour {
		t.Errorf("unexpected ttl %v", savedTTL)
	}
	if len(saved) == 0 {
		t.Fatal("expected snapshot to be saved")
	}

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) { return saved, nil }
	records, ok := c.Fallback(context.Background())
	if !ok || len(records) != 1 || records[0].Name != "Seed Bank" || records[0].Categories[0] != "Agriculture" {
		t.Fatalf("snapshot did not round-trip: %+v ok=%v", records, ok)
	}
}

func TestLoad_InnerErrorNotSaved(t *testing.T) {
	inner := &fakeFetch{err: domain.ErrLedgerUnavailable}
	c, ms := newTestCache(t, inner)
	ms.setFn = func(context.Context, string, []byte, time.Duration) error {
		t.Fatal("SET must not be called on fetch failure")
		return nil
	}

	_, err := c.Load(context.Background())
	if !errors.Is(err, domain.ErrLedgerUnavailable) {
		t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
	}
}

func TestLoad_EmptyResultNotSaved(t *testing.T) {
	inner := &fakeFetch{batch: load.Batch[vendor.Vendor]{Rejected: 3}}
	c, ms := newTestCache(t, inner)
	ms.setFn = func(context.Context, string, []byte, time.Duration) error {
		t.Fatal("SET must not be called for an empty result")
		return nil
	}

	batch, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Records) != 0 || batch.Rejected != 3 {
		t.Fatalf("unexpected batch: %+v", batch)
	}
}

func TestFallback_EmptySnapshotIsMiss(t *testing.T) {
	c, ms := newTestCache(t, &fakeFetch{})
	for _, data := range []string{"[]", "null"} {
		ms.getFn = func(context.Context, string) ([]byte, error) { return []byte(data), nil }
		if records, ok := c.Fallback(context.Background()); ok {
			t.Errorf("%s: expected miss, got %v", data, records)
		}
	}
}

func TestLoad_SaveErrorIgnored(t *testing.T) {
	inner := &fakeFetch{batch: load.Batch[vendor.Vendor]{Records: []vendor.Vendor{{ID: "V-1"}}}}
	c, ms := newTestCache(t, inner)
	ms.setFn = func(context.Context, string, []byte, time.Duration) error {
		return errors.New("store down")
	}

	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("save failure must not fail the load: %v", err)
	}
}

func TestFallback_Miss(t *testing.T) {
	c, _ := newTestCache(t, &fakeFetch{})
	if _, ok := c.Fallback(context.Background()); ok {
		t.Fatal("expected miss on empty store")
	}
}

func TestFallback_StoreErrorAndGarbage(t *testing.T) {
	tests := []struct {
		name string
		get  func(context.Context, string) ([]byte, error)
	}{
		{"store error", func(context.Context, string) ([]byte, error) { return nil, errors.New("timeout") }},
		{"garbage", func(context.Context, string) ([]byte, error) { return []byte("{not json"), nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ms := newTestCache(t, &fakeFetch{})
			ms.getFn = tt.get
			if _, ok := c.Fallback(context.Background()); ok {
				t.Fatal("expected miss")
			}
		})
	}
}

func TestNilStoreDisablesCaching(t *testing.T) {
	inner := &fakeFetch{batch: load.Batch[vendor.Vendor]{Records: []vendor.Vendor{{ID: "V-1"}}}}
	c := New[vendor.Vendor]("vendors", inner.fetch, nil, time.Hour, nil, zap.NewNop())

	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Fallback(context.Background()); ok {
		t.Fatal("expected no fallback without a store")
	}
}

func TestFallback_CountsHitsAndMisses(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_snapshot_total"}, []string{"list", "result"})
	ms := &mockKVStore{}
	c := New[vendor.Vendor]("vendors", (&fakeFetch{}).fetch, ms, time.Hour, counter, zap.NewNop())

	c.Fallback(context.Background())
	ms.getFn = func(context.Context, string) ([]byte, error) { return []byte(`[{"id":"V-1"}]`), nil }
	c.Fallback(context.Background())
	c.Fallback(context.Background())

	if got := testutil.ToFloat64(counter.WithLabelValues("vendors", "miss")); got != 1 {
		t.Errorf("miss = %f, want 1", got)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("vendors", "hit")); got != 2 {
		t.Errorf("hit = %f, want 2", got)
	}
}
