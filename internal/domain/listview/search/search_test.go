package search

import (
	"strings"
	"testing"

	"github.com/payzee/dashboard/internal/domain/record"
)

type row map[string]record.Value

func (r row) Key() string                    { return r["id"].Scalar() }
func (r row) Field(name string) record.Value { return r[name] }

func TestNew_TooLong(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxQueryLength+1), []string{"name"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "too long") {
		t.Errorf("error = %q", err)
	}
}

func TestNew_QueryWithoutFields(t *testing.T) {
	if _, err := New("farm", nil); err == nil {
		t.Fatal("expected error for query without fields")
	}
}

func TestNew_EmptyQueryWithoutFields(t *testing.T) {
	s, err := New("   ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsEmpty() {
		t.Error("whitespace query should be empty")
	}
}

func TestMatches_EmptyQueryPassesAll(t *testing.T) {
	s, _ := New("", []string{"name"})
	if !s.Matches(row{}) {
		t.Error("empty query should match a record with no fields")
	}
}

func TestMatches_ArrayElementAndCaseInsensitiveName(t *testing.T) {
	s, _ := New("farm", []string{"name", "tags"})

	tagged := row{"name": record.String("PM Kisan"), "tags": record.List("agriculture", "farmers")}
	named := row{"name": record.String("Farm Credit Scheme"), "tags": record.List("credit")}
	neither := row{"name": record.String("Skill India"), "tags": record.List("youth")}

	if !s.Matches(tagged) {
		t.Error("expected match on array element containing the query")
	}
	if !s.Matches(named) {
		t.Error("expected case-insensitive match on name")
	}
	if s.Matches(neither) {
		t.Error("unexpected match")
	}
}

func TestMatches_OnlyDesignatedFields(t *testing.T) {
	s, _ := New("delhi", []string{"name"})
	r := row{"name": record.String("Agro Solutions"), "location": record.String("Delhi")}
	if s.Matches(r) {
		t.Error("query matched a field that is not searched")
	}
}

func TestMatches_MissingFieldIsBlank(t *testing.T) {
	s, _ := New("x", []string{"name", "location"})
	if s.Matches(row{"name": record.String("abc")}) {
		t.Error("missing field should not match")
	}
}

func TestQuery_PreservesInput(t *testing.T) {
	s, _ := New("  Farm  ", []string{"name"})
	if s.Query() != "Farm" {
		t.Errorf("Query() = %q, want %q", s.Query(), "Farm")
	}
}
