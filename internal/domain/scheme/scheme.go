package scheme

import (
	"slices"
	"strconv"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/record"
)

// Scheme statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// List is the schemes table definition.
var List = listview.Definition{
	Name:         "schemes",
	FilterFields: []string{"status"},
	SearchFields: []string{"name", "target_group", "tags"},
	PageSize:     listview.DefaultPageSize,
}

// Eligibility holds the optional eligibility criteria of a scheme.
// A nil criterion means the scheme does not constrain it.
type Eligibility struct {
	DOB      *string  `json:"dob"`
	Gender   *string  `json:"gender"`
	State    *string  `json:"state"`
	District *string  `json:"district"`
	Phone    *string  `json:"phone"`
	Email    *string  `json:"email"`
	Caste    *string  `json:"caste"`
	Income   *string  `json:"income"`
	Tags     []string `json:"tags"`
}

// ToggleTag returns a copy with tag removed if present, appended otherwise.
func (e Eligibility) ToggleTag(tag string) Eligibility {
	tags := slices.Clone(e.Tags)
	if i := slices.Index(tags, tag); i >= 0 {
		e.Tags = slices.Delete(tags, i, i+1)
		return e
	}
	e.Tags = append(tags, tag)
	return e
}

// Scheme is a government benefit scheme.
type Scheme struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Amount        int64       `json:"amount"`
	LaunchDate    string      `json:"launch_date"`
	TargetGroup   string      `json:"target_group"`
	FundAllocated string      `json:"fund_allocated"`
	Status        string      `json:"status"`
	Eligibility   Eligibility `json:"eligibility"`
	CreatedAt     string      `json:"created_at"`
}

// Key implements record.Record.
func (s Scheme) Key() string { return strconv.Itoa(s.ID) }

// Field implements record.Record.
func (s Scheme) Field(name string) record.Value {
	switch name {
	case "id":
		return record.String(s.Key())
	case "name":
		return record.String(s.Name)
	case "description":
		return record.String(s.Description)
	case "launch_date":
		return record.String(s.LaunchDate)
	case "target_group":
		return record.String(s.TargetGroup)
	case "fund_allocated":
		return record.String(s.FundAllocated)
	case "status":
		return record.String(s.Status)
	case "tags":
		return record.List(s.Eligibility.Tags...)
	case "created_at":
		return record.String(s.CreatedAt)
	}
	return record.Missing
}

// Validate checks identity and normalizes the status casing in place.
func (s *Scheme) Validate() error {
	if s.ID <= 0 {
		return domain.NewFieldError("id", "must be positive")
	}
	if s.Name == "" {
		return domain.NewFieldError("name", "is required")
	}
	if s.Amount < 0 {
		return domain.NewFieldError("amount", "must not be negative")
	}
	status, err := NormalizeStatus(s.Status)
	if err != nil {
		return err
	}
	s.Status = status
	return nil
}

// NormalizeStatus maps any casing of Active/Inactive to its canonical form.
// An empty status stays empty.
func NormalizeStatus(status string) (string, error) {
	switch {
	case status == "":
		return "", nil
	case record.EqualFold(status, StatusActive):
		return StatusActive, nil
	case record.EqualFold(status, StatusInactive):
		return StatusInactive, nil
	}
	return "", domain.NewFieldError("status", "must be Active or Inactive")
}
