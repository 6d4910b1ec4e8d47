package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/payzee/dashboard/internal/domain/transaction"
	"github.com/payzee/dashboard/internal/domain/vendor"
)

// vendorProfileDTO is one element of GET /government/vendor-profiles.
type vendorProfileDTO struct {
	VendorID    string `json:"vendor_id"`
	AccountInfo struct {
		BusinessName string `json:"business_name"`
		Category     string `json:"category"`
		Location     string `json:"location"`
		Status       string `json:"status"`
	} `json:"account_info"`
}

// toDomain renames ledger fields to the vendor schema. The ledger carries a
// single category; vendors hold a list.
func (d vendorProfileDTO) toDomain() vendor.Vendor {
	var categories []string
	if c := strings.TrimSpace(d.AccountInfo.Category); c != "" {
		categories = []string{c}
	}
	return vendor.Vendor{
		ID:         d.VendorID,
		Name:       d.AccountInfo.BusinessName,
		MerchantID: d.VendorID,
		Categories: categories,
		Location:   d.AccountInfo.Location,
		Status:     d.AccountInfo.Status,
	}
}

// transactionDTO is one element of GET /governments/{id}/transactions.
type transactionDTO struct {
	TransactionID string     `json:"transaction_id"`
	SenderID      string     `json:"sender_id"`
	ReceiverID    string     `json:"receiver_id"`
	Amount        amountText `json:"amount"`
	Region        string     `json:"region"`
	Date          string     `json:"date"`
	Status        string     `json:"status"`
}

func (d transactionDTO) toDomain() transaction.Transaction {
	return transaction.Transaction{
		ID:         d.TransactionID,
		SenderID:   d.SenderID,
		ReceiverID: d.ReceiverID,
		Amount:     string(d.Amount),
		Region:     d.Region,
		Date:       d.Date,
		Status:     d.Status,
	}
}

// amountText accepts the ledger amount as display text ("₹5,000") or as a
// bare JSON number, which is kept in its literal form.
type amountText string

func (a *amountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountText(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("amount %s: want string or number", data)
	}
	*a = amountText(n.String())
	return nil
}
