package beneficiary

import (
	"strconv"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/record"
)

// List is the beneficiaries table definition.
var List = listview.Definition{
	Name:         "beneficiaries",
	FilterFields: []string{"state", "gender"},
	SearchFields: []string{"name", "state", "location", "aadhaar"},
	PageSize:     listview.DefaultPageSize,
}

// Beneficiary is a registered scheme recipient.
type Beneficiary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	State    string `json:"state"`
	Gender   string `json:"gender"`
	Aadhaar  string `json:"aadhaar"` // last four digits only
	Location string `json:"location"`
}

// Key implements record.Record.
func (b Beneficiary) Key() string { return strconv.Itoa(b.ID) }

// Field implements record.Record.
func (b Beneficiary) Field(name string) record.Value {
	switch name {
	case "id":
		return record.String(b.Key())
	case "name":
		return record.String(b.Name)
	case "state":
		return record.String(b.State)
	case "gender":
		return record.String(b.Gender)
	case "aadhaar":
		return record.String(b.Aadhaar)
	case "location":
		return record.String(b.Location)
	}
	return record.Missing
}

// Validate checks identity and the masked Aadhaar suffix.
func (b *Beneficiary) Validate() error {
	if b.ID <= 0 {
		return domain.NewFieldError("id", "must be positive")
	}
	if b.Name == "" {
		return domain.NewFieldError("name", "is required")
	}
	if b.Aadhaar != "" && !isLastFour(b.Aadhaar) {
		return domain.NewFieldError("aadhaar", "must be the last four digits")
	}
	return nil
}

func isLastFour(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
