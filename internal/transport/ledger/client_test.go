package ledger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterLedgerMetrics()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(&Config{
		BaseURL:      srv.URL + "/api/v1/",
		GovernmentID: "gov-1",
		Token:        "secret",
		Timeout:      time.Second,
		Logger:       zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient(&Config{}); err == nil {
		t.Error("expected error for empty base url")
	}
	if _, err := NewClient(&Config{BaseURL: "not a url"}); err == nil {
		t.Error("expected error for relative base url")
	}
}

func TestVendors_RenamesFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/government/vendor-profiles" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"vendor_id":"V-77","account_info":{"business_name":"Seed Bank","category":"Agriculture","location":"Pune","status":"active"}},
			{"vendor_id":"V-78","account_info":{"business_name":"No Category","category":" ","location":"Goa","status":"Inactive"}}
		]`))
	})

	batch, err := c.Vendors(context.Background())
	if err != nil {
		t.Fatalf("Vendors: %v", err)
	}
	if batch.Rejected != 0 || len(batch.Records) != 2 {
		t.Fatalf("unexpected batch: %+v", batch)
	}

	v := batch.Records[0]
	if v.ID != "V-77" || v.MerchantID != "V-77" || v.Name != "Seed Bank" || v.Location != "Pune" {
		t.Errorf("fields not renamed: %+v", v)
	}
	if len(v.Categories) != 1 || v.Categories[0] != "Agriculture" {
		t.Errorf("expected single category list, got %v", v.Categories)
	}
	if v.Status != "Active" {
		t.Errorf("expected normalized status Active, got %q", v.Status)
	}
	if len(batch.Records[1].Categories) != 0 {
		t.Errorf("blank category should be dropped, got %v", batch.Records[1].Categories)
	}
}

func TestVendors_DropsRecordsWithoutKey(t *testing.T) {
	before := testutil.ToFloat64(metrics.LedgerRecordsRejectedTotal.WithLabelValues("vendors"))

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"vendor_id":"","account_info":{"business_name":"Ghost"}},
			{"vendor_id":"V-1","account_info":{"business_name":"Real"}}
		]`))
	})

	batch, err := c.Vendors(context.Background())
	if err != nil {
		t.Fatalf("Vendors: %v", err)
	}
	if len(batch.Records) != 1 || batch.Records[0].ID != "V-1" {
		t.Fatalf("unexpected records: %+v", batch.Records)
	}
	if batch.Rejected != 1 {
		t.Errorf("expected 1 rejected, got %d", batch.Rejected)
	}
	after := testutil.ToFloat64(metrics.LedgerRecordsRejectedTotal.WithLabelValues("vendors"))
	if after-before != 1 {
		t.Errorf("expected rejected counter +1, got %f", after-before)
	}
}

func TestTransactions_RenamesFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/governments/gov-1/transactions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"transaction_id":"TXN-9","sender_id":"S","receiver_id":"R",
			"amount":"₹10","region":"North","date":"01 Feb 2023","status":"pending"}]`))
	})

	batch, err := c.Transactions(context.Background())
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(batch.Records))
	}
	tx := batch.Records[0]
	if tx.ID != "TXN-9" || tx.SenderID != "S" || tx.ReceiverID != "R" || tx.Region != "North" {
		t.Errorf("fields not renamed: %+v", tx)
	}
	if tx.Status != "Pending" {
		t.Errorf("expected normalized status Pending, got %q", tx.Status)
	}
}

func TestTransactions_NumericAmount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"transaction_id":"TXN-1","amount":2500,"status":"completed"},
			{"transaction_id":"TXN-2","amount":"₹5,000","status":"completed"},
			{"transaction_id":"TXN-3","amount":1250.75,"status":"completed"},
			{"transaction_id":"TXN-4","amount":null,"status":"completed"}]`))
	})

	batch, err := c.Transactions(context.Background())
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	got := make(map[string]string, len(batch.Records))
	for _, tx := range batch.Records {
		got[tx.ID] = tx.Amount
	}
	want := map[string]string{"TXN-1": "2500", "TXN-2": "₹5,000", "TXN-3": "1250.75"}
	for id, amount := range want {
		if got[id] != amount {
			t.Errorf("%s amount = %q, want %q", id, got[id], amount)
		}
	}
}

func TestTransactions_RejectsObjectAmount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"transaction_id":"TXN-1","amount":{"value":1}}]`))
	})

	if _, err := c.Transactions(context.Background()); !errors.Is(err, domain.ErrLedgerUnavailable) {
		t.Errorf("expected ErrLedgerUnavailable, got %v", err)
	}
}

func TestTransactions_RequiresGovernmentID(t *testing.T) {
	c, err := NewClient(&Config{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = c.Transactions(context.Background())
	if !errors.Is(err, domain.ErrLedgerUnavailable) {
		t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
	}
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"unauthorized", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}},
		{"malformed body", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"`))
		}},
		{"object instead of list", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"vendor_id":"V-1"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			_, err := c.Vendors(context.Background())
			if !errors.Is(err, domain.ErrLedgerUnavailable) {
				t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
			}
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c, err := NewClient(&Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	before := testutil.ToFloat64(metrics.LedgerRequestsTotal.WithLabelValues(endpointVendors, "error"))
	_, err = c.Vendors(context.Background())
	if !errors.Is(err, domain.ErrLedgerUnavailable) {
		t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
	}
	after := testutil.ToFloat64(metrics.LedgerRequestsTotal.WithLabelValues(endpointVendors, "error"))
	if after-before != 1 {
		t.Errorf("expected error counter +1, got %f", after-before)
	}
}

func TestFetch_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Vendors(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
	if !errors.Is(err, domain.ErrLedgerUnavailable) {
		t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
	}
}
