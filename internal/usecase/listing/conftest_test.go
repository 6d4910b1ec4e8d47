package listing

import (
	"testing"

	"github.com/payzee/dashboard/internal/domain/beneficiary"
	"github.com/payzee/dashboard/internal/domain/scheme"
	"github.com/payzee/dashboard/internal/domain/transaction"
	"github.com/payzee/dashboard/internal/domain/vendor"
	"github.com/payzee/dashboard/internal/repository/sample"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	for _, reg := range []struct {
		err error
	}{
		{c.Register(scheme.List, Records(sample.Schemes()))},
		{c.Register(beneficiary.List, Records(sample.Beneficiaries()))},
		{c.Register(vendor.List, Records(sample.Vendors()))},
		{c.Register(transaction.List, Records(sample.Transactions()))},
	} {
		if reg.err != nil {
			t.Fatalf("register: %v", reg.err)
		}
	}
	return c
}

func newTestService(t *testing.T) (*Service, *Catalog) {
	t.Helper()
	c := newTestCatalog(t)
	return New(c), c
}
