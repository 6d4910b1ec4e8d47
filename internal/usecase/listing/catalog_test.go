package listing

import (
	"errors"
	"testing"
	"time"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/record"
	"github.com/payzee/dashboard/internal/domain/vendor"
)

func TestRegister_Errors(t *testing.T) {
	c := NewCatalog()
	if err := c.Register(listview.Definition{Name: "broken"}, nil); err == nil {
		t.Error("expected invalid definition to be rejected")
	}
	if err := c.Register(vendor.List, nil); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := c.Register(vendor.List, nil); err == nil {
		t.Error("expected duplicate registration to be rejected")
	}
}

func TestDefinitions_RegistrationOrder(t *testing.T) {
	c := newTestCatalog(t)
	var names []string
	for _, d := range c.Definitions() {
		names = append(names, d.Name)
	}
	want := []string{"schemes", "beneficiaries", "vendors", "transactions"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestSnapshot_UnknownList(t *testing.T) {
	c := newTestCatalog(t)
	if _, err := c.Snapshot("payments"); !errors.Is(err, domain.ErrUnknownList) {
		t.Fatalf("expected ErrUnknownList, got %v", err)
	}
}

func TestBeginLoad_SingleFlight(t *testing.T) {
	c := newTestCatalog(t)
	now := time.Now()

	st, started, err := c.BeginLoad("vendors", now)
	if err != nil || !started || st.Phase != load.Loading {
		t.Fatalf("first BeginLoad: st=%+v started=%v err=%v", st, started, err)
	}
	st, started, err = c.BeginLoad("vendors", now)
	if err != nil || started || st.Phase != load.Loading {
		t.Fatalf("second BeginLoad must report in-flight load: st=%+v started=%v err=%v", st, started, err)
	}
}

func TestReplace_SwapsSnapshotWithoutTouchingOld(t *testing.T) {
	c := newTestCatalog(t)
	before, _ := c.Snapshot("vendors")

	fresh := Records([]vendor.Vendor{{ID: "V-1", Name: "Seed Bank"}})
	st := load.Initial(13).Succeed(load.SourceLedger, 1, 0, time.Now())
	if err := c.Replace("vendors", fresh, st); err != nil {
		t.Fatalf("replace: %v", err)
	}

	after, _ := c.Snapshot("vendors")
	if len(after.Records) != 1 || after.Load.Source != load.SourceLedger {
		t.Fatalf("unexpected snapshot after replace: %+v", after.Load)
	}
	if len(before.Records) != 13 {
		t.Fatalf("previous snapshot was modified: %d records", len(before.Records))
	}
	sample, _ := c.Sample("vendors")
	if len(sample) != 13 {
		t.Fatalf("sample set was modified: %d records", len(sample))
	}
}

func TestUpdate_CopyOnWrite(t *testing.T) {
	c := newTestCatalog(t)
	before, _ := c.Snapshot("vendors")

	_, err := c.Update("vendors", "1", func(r record.Record) (record.Record, error) {
		v := r.(vendor.Vendor)
		v.Name = "Renamed"
		return v, nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if before.Records[0].(vendor.Vendor).Name != "Agro Solutions Ltd." {
		t.Fatal("update mutated a published snapshot")
	}
	after, _ := c.Snapshot("vendors")
	if after.Records[0].(vendor.Vendor).Name != "Renamed" {
		t.Fatal("update not visible in new snapshot")
	}

	_, err = c.Update("vendors", "404", func(r record.Record) (record.Record, error) { return r, nil })
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
