package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/payzee/dashboard/internal/config"
	"github.com/payzee/dashboard/internal/db"
	dbRedis "github.com/payzee/dashboard/internal/db/redis"
	"github.com/payzee/dashboard/internal/domain/beneficiary"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/record"
	"github.com/payzee/dashboard/internal/domain/scheme"
	"github.com/payzee/dashboard/internal/domain/transaction"
	"github.com/payzee/dashboard/internal/domain/vendor"
	logpkg "github.com/payzee/dashboard/internal/logger"
	"github.com/payzee/dashboard/internal/metrics"
	"github.com/payzee/dashboard/internal/repository/sample"
	"github.com/payzee/dashboard/internal/repository/snapshot"
	chiTransport "github.com/payzee/dashboard/internal/transport/chi"
	"github.com/payzee/dashboard/internal/transport/ledger"
	healthuc "github.com/payzee/dashboard/internal/usecase/health"
	"github.com/payzee/dashboard/internal/usecase/listing"
	"github.com/payzee/dashboard/internal/usecase/source"
	"github.com/payzee/dashboard/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dashboard API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("ledger_enabled", cfg.Ledger.Enabled),
		zap.String("cache_driver", cfg.Cache.Driver),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterLedgerMetrics()
	metrics.RegisterListMetrics()

	ctx := context.Background()

	// Stays a nil interface when the cache is disabled. A typed nil
	// pointer here would pass the nil checks downstream.
	var store db.Store
	if cfg.Cache.Enabled() {
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer s.Close()

		if err := s.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to snapshot cache", zap.Strings("addrs", cfg.Cache.Addrs))
		store = s
	}

	catalog := listing.NewCatalog()
	mustRegister(logger, catalog, withPageSize(scheme.List, cfg.Lists.PageSize), listing.Records(sample.Schemes()))
	mustRegister(logger, catalog, withPageSize(beneficiary.List, cfg.Lists.PageSize), listing.Records(sample.Beneficiaries()))
	mustRegister(logger, catalog, withPageSize(vendor.List, cfg.Lists.PageSize), listing.Records(sample.Vendors()))
	mustRegister(logger, catalog, withPageSize(transaction.List, cfg.Lists.PageSize), listing.Records(sample.Transactions()))

	loaders, err := buildLoaders(cfg, store, logger)
	if err != nil {
		logger.Fatal("Failed to create ledger client", zap.Error(err))
	}
	sources := source.New(catalog, loaders, logger)

	// One fetch per remote list at startup. Views serve the sample set
	// until it lands.
	mountCtx, cancelMount := context.WithCancel(ctx)
	mounted := make(chan struct{})
	go func() {
		defer close(mounted)
		if err := sources.MountAll(mountCtx); err != nil {
			logger.Error("Initial ledger fetch failed", zap.Error(err))
		}
	}()

	var cache healthuc.CachePinger
	if store != nil {
		cache = store
	}
	healthSvc := healthuc.New(cache, catalog, sources.Remote())

	server := chiTransport.NewServer(listing.New(catalog), sources, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	cancelMount()
	<-mounted
	sources.Wait()

	logger.Info("Server stopped gracefully")
}

// buildLoaders assembles the remote loaders: ledger fetch -> snapshot cache.
// Transactions are only fetched when a government id is configured.
func buildLoaders(cfg config.Config, store db.Store, logger *zap.Logger) (map[string]source.Loader, error) {
	loaders := make(map[string]source.Loader)
	if !cfg.Ledger.Enabled {
		logger.Info("Ledger disabled, serving sample data only")
		return loaders, nil
	}

	client, err := ledger.NewClient(&ledger.Config{
		BaseURL:      cfg.Ledger.BaseURL,
		GovernmentID: cfg.Ledger.GovernmentID,
		Token:        cfg.Ledger.Token,
		Timeout:      cfg.Ledger.Timeout(),
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}

	ttl := cfg.Cache.TTL()
	vendors := snapshot.New[vendor.Vendor](
		vendor.List.Name, client.Vendors, store, ttl, metrics.SnapshotCacheTotal, logger,
	)
	loaders[vendor.List.Name] = source.Erase[vendor.Vendor](vendors)

	if cfg.Ledger.GovernmentID != "" {
		txs := snapshot.New[transaction.Transaction](
			transaction.List.Name, client.Transactions, store, ttl, metrics.SnapshotCacheTotal, logger,
		)
		loaders[transaction.List.Name] = source.Erase[transaction.Transaction](txs)
	}
	return loaders, nil
}

func withPageSize(def listview.Definition, size int) listview.Definition {
	if size > 0 {
		def.PageSize = size
	}
	return def
}

func mustRegister(logger *zap.Logger, catalog *listing.Catalog, def listview.Definition, rows []record.Record) {
	if err := catalog.Register(def, rows); err != nil {
		logger.Fatal("Invalid list definition", zap.String("list", def.Name), zap.Error(err))
	}
}
