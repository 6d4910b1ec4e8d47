// Package ledger is the HTTP client of the external benefits-ledger service.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/transaction"
	"github.com/payzee/dashboard/internal/domain/vendor"
	"github.com/payzee/dashboard/internal/metrics"
)

const (
	endpointVendors      = "vendor_profiles"
	endpointTransactions = "transactions"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
	maxErrorDetail = 512
)

// Config holds the ledger client settings.
type Config struct {
	BaseURL      string
	GovernmentID string
	Token        string
	Timeout      time.Duration
	HTTPClient   *http.Client
	Logger       *zap.Logger
}

// Client fetches vendor profiles and transactions from the ledger.
type Client struct {
	http         *http.Client
	baseURL      string
	governmentID string
	token        string
	logger       *zap.Logger
}

// NewClient creates a ledger client.
func NewClient(cfg *Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("ledger base url is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("ledger base url: %w", err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:         hc,
		baseURL:      base,
		governmentID: cfg.GovernmentID,
		token:        cfg.Token,
		logger:       logger,
	}, nil
}

// Vendors fetches vendor profiles and maps them onto the vendor schema.
// Profiles failing validation are dropped and counted.
func (c *Client) Vendors(ctx context.Context) (load.Batch[vendor.Vendor], error) {
	var dtos []vendorProfileDTO
	if err := c.get(ctx, endpointVendors, "/government/vendor-profiles", &dtos); err != nil {
		return load.Batch[vendor.Vendor]{}, err
	}

	batch := load.Batch[vendor.Vendor]{Records: make([]vendor.Vendor, 0, len(dtos))}
	for _, d := range dtos {
		v := d.toDomain()
		if err := v.Validate(); err != nil {
			c.reject(vendor.List.Name, d.VendorID, err)
			batch.Rejected++
			continue
		}
		batch.Records = append(batch.Records, v)
	}
	return batch, nil
}

// Transactions fetches the configured government's transactions.
func (c *Client) Transactions(ctx context.Context) (load.Batch[transaction.Transaction], error) {
	if c.governmentID == "" {
		return load.Batch[transaction.Transaction]{},
			fmt.Errorf("government id is not configured: %w", domain.ErrLedgerUnavailable)
	}

	var dtos []transactionDTO
	path := "/governments/" + url.PathEscape(c.governmentID) + "/transactions"
	if err := c.get(ctx, endpointTransactions, path, &dtos); err != nil {
		return load.Batch[transaction.Transaction]{}, err
	}

	batch := load.Batch[transaction.Transaction]{Records: make([]transaction.Transaction, 0, len(dtos))}
	for _, d := range dtos {
		t := d.toDomain()
		if err := t.Validate(); err != nil {
			c.reject(transaction.List.Name, d.TransactionID, err)
			batch.Rejected++
			continue
		}
		batch.Records = append(batch.Records, t)
	}
	return batch, nil
}

func (c *Client) reject(list, key string, err error) {
	metrics.LedgerRecordsRejectedTotal.WithLabelValues(list).Inc()
	c.logger.Warn("Dropped invalid ledger record",
		zap.String("list", list), zap.String("key", key), zap.Error(err))
}

// get performs one GET and decodes a JSON body into out. Every failure wraps
// domain.ErrLedgerUnavailable for the 502 mapping.
func (c *Client) get(ctx context.Context, endpoint, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("build ledger request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.fail(endpoint, errorType(err))
		return fmt.Errorf("ledger %s request failed: %w: %w", endpoint, domain.ErrLedgerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.fail(endpoint, "http_"+strconv.Itoa(resp.StatusCode))
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorDetail))
		return fmt.Errorf("ledger %s returned %d: %s: %w",
			endpoint, resp.StatusCode, strings.TrimSpace(string(detail)), domain.ErrLedgerUnavailable)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		c.fail(endpoint, "decode")
		return fmt.Errorf("decode ledger %s response: %w: %w", endpoint, domain.ErrLedgerUnavailable, err)
	}

	metrics.LedgerRequestsTotal.WithLabelValues(endpoint, "success").Inc()
	metrics.LedgerRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	return nil
}

func (c *Client) fail(endpoint, errType string) {
	metrics.LedgerRequestsTotal.WithLabelValues(endpoint, "error").Inc()
	metrics.LedgerErrorsTotal.WithLabelValues(endpoint, errType).Inc()
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport"
	}
}
