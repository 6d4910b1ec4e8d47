package transaction

import (
	"strings"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/record"
)

// Transaction statuses.
const (
	StatusSuccess = "Success"
	StatusPending = "Pending"
	StatusFailed  = "Failed"
)

// List is the transactions table definition. Transactions are read-only.
var List = listview.Definition{
	Name:         "transactions",
	FilterFields: []string{"region", "status"},
	SearchFields: []string{"id", "sender_id", "receiver_id", "region"},
	PageSize:     listview.DefaultPageSize,
	Remote:       true,
}

// Transaction is one benefit disbursement recorded by the ledger.
type Transaction struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Amount     string `json:"amount"`
	Region     string `json:"region"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// Key implements record.Record.
func (t Transaction) Key() string { return t.ID }

// Field implements record.Record.
func (t Transaction) Field(name string) record.Value {
	switch name {
	case "id":
		return record.String(t.ID)
	case "sender_id":
		return record.String(t.SenderID)
	case "receiver_id":
		return record.String(t.ReceiverID)
	case "amount":
		return record.String(t.Amount)
	case "region":
		return record.String(t.Region)
	case "date":
		return record.String(t.Date)
	case "status":
		return record.String(t.Status)
	}
	return record.Missing
}

// Validate checks identity and normalizes status casing in place.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return domain.NewFieldError("id", "is required")
	}
	for _, s := range []string{StatusSuccess, StatusPending, StatusFailed} {
		if record.EqualFold(t.Status, s) {
			t.Status = s
			break
		}
	}
	return nil
}
