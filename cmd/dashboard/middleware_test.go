package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/payzee/dashboard/internal/config"
	"github.com/payzee/dashboard/internal/domain/transaction"
	"github.com/payzee/dashboard/internal/domain/vendor"
	logpkg "github.com/payzee/dashboard/internal/logger"
)

func TestJSONRecoverer(t *testing.T) {
	h := jsonRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/lists", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["code"] != "internal_error" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestWideEventMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	var sawLogger bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logpkg.FromContext(r.Context()).Info("handler")
		sawLogger = true
		w.WriteHeader(http.StatusTeapot)
	})
	h := chiMiddleware.RequestID(wideEventMiddleware(zap.New(core))(inner))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/lists/vendors?q=agro", http.NoBody))

	if !sawLogger {
		t.Fatal("handler not called")
	}
	reqID := rr.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("expected X-Request-ID header")
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.ContextMap()["request_id"] != reqID {
			t.Errorf("%s: missing request_id, got %v", e.Message, e.ContextMap())
		}
	}
	line := entries[1].ContextMap()
	if entries[1].Message != "http_request" || line["status"] != int64(http.StatusTeapot) || line["query"] != "q=agro" {
		t.Errorf("unexpected canonical line: %s %v", entries[1].Message, line)
	}
}

func TestWithPageSize(t *testing.T) {
	def := withPageSize(vendor.List, 0)
	if def.PageSize != 10 {
		t.Errorf("expected default page size, got %d", def.PageSize)
	}
	if def = withPageSize(vendor.List, 25); def.PageSize != 25 {
		t.Errorf("expected override, got %d", def.PageSize)
	}
}

func TestBuildLoaders(t *testing.T) {
	tests := []struct {
		name   string
		ledger config.LedgerConfig
		want   []string
	}{
		{"disabled", config.LedgerConfig{}, nil},
		{"vendors only", config.LedgerConfig{Enabled: true, BaseURL: config.DefaultLedgerURL}, []string{vendor.List.Name}},
		{"with transactions", config.LedgerConfig{Enabled: true, BaseURL: config.DefaultLedgerURL, GovernmentID: "gov-1"},
			[]string{vendor.List.Name, transaction.List.Name}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{Ledger: tt.ledger}
			cfg.ApplyDefaults()

			loaders, err := buildLoaders(cfg, nil, zap.NewNop())
			if err != nil {
				t.Fatalf("buildLoaders: %v", err)
			}
			if len(loaders) != len(tt.want) {
				t.Fatalf("expected %d loaders, got %d", len(tt.want), len(loaders))
			}
			for _, name := range tt.want {
				if loaders[name] == nil {
					t.Errorf("missing loader %q", name)
				}
			}
		})
	}
}
