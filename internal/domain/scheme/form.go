package scheme

import "github.com/payzee/dashboard/internal/domain"

// Form is the editable subset of a scheme.
type Form struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Amount      int64       `json:"amount"`
	Status      string      `json:"status"`
	Eligibility Eligibility `json:"eligibility"`
}

// FormOf returns the form pre-filled from s.
func FormOf(s Scheme) Form {
	return Form{
		Name:        s.Name,
		Description: s.Description,
		Amount:      s.Amount,
		Status:      s.Status,
		Eligibility: s.Eligibility,
	}
}

// Apply validates f and returns s with the form fields replaced.
// Identity, launch and funding fields are not editable.
func (s Scheme) Apply(f Form) (Scheme, error) {
	if f.Name == "" {
		return Scheme{}, domain.NewFieldError("name", "is required")
	}
	if f.Amount < 0 {
		return Scheme{}, domain.NewFieldError("amount", "must not be negative")
	}
	status, err := NormalizeStatus(f.Status)
	if err != nil {
		return Scheme{}, err
	}
	if status == "" {
		return Scheme{}, domain.NewFieldError("status", "is required")
	}

	s.Name = f.Name
	s.Description = f.Description
	s.Amount = f.Amount
	s.Status = status
	s.Eligibility = f.Eligibility
	return s, nil
}
