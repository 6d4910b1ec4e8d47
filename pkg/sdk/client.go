package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/payzee/dashboard/internal/db"
	dbRedis "github.com/payzee/dashboard/internal/db/redis"
	"github.com/payzee/dashboard/internal/domain/beneficiary"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/record"
	"github.com/payzee/dashboard/internal/domain/scheme"
	"github.com/payzee/dashboard/internal/domain/transaction"
	"github.com/payzee/dashboard/internal/domain/vendor"
	"github.com/payzee/dashboard/internal/metrics"
	"github.com/payzee/dashboard/internal/repository/sample"
	"github.com/payzee/dashboard/internal/repository/snapshot"
	"github.com/payzee/dashboard/internal/transport/ledger"
	healthuc "github.com/payzee/dashboard/internal/usecase/health"
	"github.com/payzee/dashboard/internal/usecase/listing"
	"github.com/payzee/dashboard/internal/usecase/source"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultSnapshotTTL      = 24 * time.Hour
)

// Client is the dashboard SDK entry point.
type Client struct {
	store   db.Store
	lists   *listing.Service
	sources *source.Service
	health  *healthuc.Service
	obs     *observer
}

// New creates a Client with every list on its sample set. When a snapshot
// cache is configured, the provided context bounds its readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{cacheTTL: defaultSnapshotTTL}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var store db.Store
	if cfg.driver != "" {
		s, err := createStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("dashboard: snapshot cache not ready: %w", err)
		}
		store = s
	}

	c, err := wireClient(cfg, store, obs)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}
	return c, nil
}

func createStore(cfg *clientConfig) (*dbRedis.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("dashboard: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("dashboard: unknown driver %q", cfg.driver)
	}
}

func wireClient(cfg *clientConfig, store db.Store, obs *observer) (*Client, error) {
	catalog := listing.NewCatalog()
	lists := []struct {
		def  listview.Definition
		rows []record.Record
	}{
		{scheme.List, listing.Records(sample.Schemes())},
		{beneficiary.List, listing.Records(sample.Beneficiaries())},
		{vendor.List, listing.Records(sample.Vendors())},
		{transaction.List, listing.Records(sample.Transactions())},
	}
	for _, l := range lists {
		if cfg.pageSize > 0 {
			l.def.PageSize = cfg.pageSize
		}
		if err := catalog.Register(l.def, l.rows); err != nil {
			return nil, fmt.Errorf("dashboard: register %s: %w", l.def.Name, err)
		}
	}

	// Internal services log through zap; SDK callers see slog via the observer.
	logger := zap.NewNop()

	loaders := make(map[string]source.Loader)
	if cfg.ledgerURL != "" {
		client, err := ledger.NewClient(&ledger.Config{
			BaseURL:      cfg.ledgerURL,
			GovernmentID: cfg.governmentID,
			Token:        cfg.ledgerToken,
			Timeout:      cfg.ledgerTimeout,
			Logger:       logger,
		})
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
		loaders[vendor.List.Name] = source.Erase[vendor.Vendor](snapshot.New[vendor.Vendor](
			vendor.List.Name, client.Vendors, store, cfg.cacheTTL, metrics.SnapshotCacheTotal, logger,
		))
		if cfg.governmentID != "" {
			loaders[transaction.List.Name] = source.Erase[transaction.Transaction](snapshot.New[transaction.Transaction](
				transaction.List.Name, client.Transactions, store, cfg.cacheTTL, metrics.SnapshotCacheTotal, logger,
			))
		}
	}

	sources := source.New(catalog, loaders, logger)

	var cache healthuc.CachePinger
	if store != nil {
		cache = store
	}

	return &Client{
		store:   store,
		lists:   listing.New(catalog),
		sources: sources,
		health:  healthuc.New(cache, catalog, sources.Remote()),
		obs:     obs,
	}, nil
}

// Close waits for background reloads and releases the snapshot cache.
func (c *Client) Close() {
	c.sources.Wait()
	if c.store != nil {
		c.store.Close()
	}
}

// Lists returns the list definitions in display order.
func (c *Client) Lists(ctx context.Context) []Definition {
	return c.lists.Lists(ctx)
}

// Remote returns the names of the ledger-backed lists.
func (c *Client) Remote() []string {
	return c.sources.Remote()
}

// Mount fetches every ledger-backed list once and waits for the results.
// A failed fetch is not an error: the list keeps its fallback data and
// Status reports the failure.
func (c *Client) Mount(ctx context.Context) (err error) {
	defer c.obs.track("mount", "*")(&err)

	return c.sources.MountAll(ctx)
}

// Reload refetches one ledger-backed list and returns its new load state.
func (c *Client) Reload(ctx context.Context, list string) (st LoadState, err error) {
	defer c.obs.track("reload", list)(&err)

	return c.sources.Mount(ctx, list)
}

// Status returns the load state of a list.
func (c *Client) Status(ctx context.Context, list string) (LoadState, error) {
	return c.lists.LoadState(ctx, list)
}

// View renders one page of a list.
func (c *Client) View(ctx context.Context, list string, q Query) (v View, err error) {
	defer c.obs.track("view", list)(&err)

	return c.lists.View(ctx, list, q)
}

// Transition applies a user action to the state in q and renders the result.
func (c *Client) Transition(ctx context.Context, list string, q Query, a Action) (v View, err error) {
	defer c.obs.track("transition", list)(&err)

	return c.lists.Transition(ctx, list, q, a)
}

// Options returns the distinct values of each filter field of a list.
func (c *Client) Options(ctx context.Context, list string) (map[string][]string, error) {
	return c.lists.Options(ctx, list)
}

// Summary returns totals and breakdowns of every list.
func (c *Client) Summary(ctx context.Context) (Summary, error) {
	return c.lists.Summary(ctx)
}

// Scheme returns one scheme by id.
func (c *Client) Scheme(ctx context.Context, id int) (Scheme, error) {
	return c.lists.Scheme(ctx, id)
}

// UpdateScheme validates form and applies it to the scheme with id.
func (c *Client) UpdateScheme(ctx context.Context, id int, form SchemeForm) (s Scheme, err error) {
	defer c.obs.track("update_scheme", scheme.List.Name)(&err)

	return c.lists.UpdateScheme(ctx, id, form)
}

// ToggleSchemeTag adds tag to a scheme's eligibility tags, or removes it
// when already present.
func (c *Client) ToggleSchemeTag(ctx context.Context, id int, tag string) (s Scheme, err error) {
	defer c.obs.track("toggle_scheme_tag", scheme.List.Name)(&err)

	return c.lists.ToggleSchemeTag(ctx, id, tag)
}

// Ping checks snapshot cache connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return errors.New("dashboard: snapshot cache not configured")
	}
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
