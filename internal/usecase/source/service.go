// Package source mounts remote-backed lists: one fetch per mount, no retry,
// with the last-good snapshot or the sample set as fallback.
package source

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/load"
)

// Service fetches remote lists into the catalog.
type Service struct {
	catalog Catalog
	loaders map[string]Loader
	logger  *zap.Logger
	now     func() time.Time

	wg sync.WaitGroup
}

// New creates a source service. loaders is keyed by list name.
func New(catalog Catalog, loaders map[string]Loader, logger *zap.Logger) *Service {
	return &Service{
		catalog: catalog,
		loaders: loaders,
		logger:  logger,
		now:     time.Now,
	}
}

// Remote returns the names of remote-backed lists, sorted.
func (s *Service) Remote() []string {
	names := make([]string, 0, len(s.loaders))
	for name := range s.loaders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MountAll fetches every remote list concurrently and waits for all of
// them. Fetch failures are recorded in the load state, not returned.
func (s *Service) MountAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range s.Remote() {
		g.Go(func() error {
			_, err := s.Mount(gctx, name)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("mount remote lists: %w", err)
	}
	return nil
}

// Mount runs one fetch of list and returns the resulting load state. If a
// fetch is already in flight it returns that state without starting another.
func (s *Service) Mount(ctx context.Context, list string) (load.State, error) {
	ld, ok := s.loaders[list]
	if !ok {
		return load.State{}, s.notRemote(list)
	}

	st, started, err := s.catalog.BeginLoad(list, s.now())
	if err != nil {
		return load.State{}, err
	}
	if !started {
		return st, nil
	}
	return s.fetch(ctx, list, ld, st)
}

// Reload starts a background fetch of list and returns the Loading state.
// The fetch outlives the calling request.
func (s *Service) Reload(ctx context.Context, list string) (load.State, error) {
	ld, ok := s.loaders[list]
	if !ok {
		return load.State{}, s.notRemote(list)
	}

	st, started, err := s.catalog.BeginLoad(list, s.now())
	if err != nil {
		return load.State{}, err
	}
	if !started {
		return st, nil
	}

	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_, _ = s.fetch(bg, list, ld, st)
	}()
	return st, nil
}

// Wait blocks until background reloads finish.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) fetch(ctx context.Context, list string, ld Loader, st load.State) (load.State, error) {
	log := s.logger.With(zap.String("list", list))

	sample, err := s.catalog.Sample(list)
	if err != nil {
		return load.State{}, err
	}

	batch, fetchErr := ld.Load(ctx)
	if fetchErr != nil {
		if cached, ok := ld.Fallback(ctx); ok && len(cached) > 0 {
			st = st.Fail(fetchErr, load.SourceSnapshot, len(cached), s.now())
			log.Warn("Remote fetch failed, serving last snapshot", zap.Error(fetchErr), zap.Int("records", len(cached)))
			return st, s.catalog.Replace(list, cached, st)
		}
		st = st.Fail(fetchErr, load.SourceSample, len(sample), s.now())
		log.Warn("Remote fetch failed, serving sample set", zap.Error(fetchErr))
		return st, s.catalog.Replace(list, sample, st)
	}

	if len(batch.Records) == 0 {
		st = st.Succeed(load.SourceSample, len(sample), batch.Rejected, s.now())
		log.Info("Remote list is empty, keeping sample set", zap.Int("rejected", batch.Rejected))
		return st, s.catalog.Replace(list, sample, st)
	}

	st = st.Succeed(load.SourceLedger, len(batch.Records), batch.Rejected, s.now())
	log.Info("Remote list loaded", zap.Int("records", len(batch.Records)), zap.Int("rejected", batch.Rejected))
	return st, s.catalog.Replace(list, batch.Records, st)
}

func (s *Service) notRemote(list string) error {
	if _, err := s.catalog.Sample(list); err != nil {
		return err
	}
	return fmt.Errorf("%s: %w", list, domain.ErrNotRemote)
}
