package record

import "testing"

func TestValue_Missing(t *testing.T) {
	v := Missing
	if v.Scalar() != "" {
		t.Errorf("Scalar() = %q, want empty", v.Scalar())
	}
	if v.Elements() != nil {
		t.Errorf("Elements() = %v, want nil", v.Elements())
	}
}

func TestValue_Scalar(t *testing.T) {
	v := String("Active")
	if v.Scalar() != "Active" {
		t.Fatalf("Scalar() = %q", v.Scalar())
	}
	if got := v.Elements(); len(got) != 1 || got[0] != "Active" {
		t.Errorf("Elements() = %v", got)
	}
}

func TestValue_List(t *testing.T) {
	src := []string{"Agriculture", "Rural"}
	v := List(src...)
	src[0] = "mutated"

	if len(v.Elements()) != 2 {
		t.Fatalf("Elements() = %v, want 2 items", v.Elements())
	}
	if v.Elements()[0] != "Agriculture" {
		t.Errorf("list was not copied: %v", v.Elements())
	}
	if v.Scalar() != "Agriculture, Rural" {
		t.Errorf("Scalar() = %q", v.Scalar())
	}
}

func TestValue_EmptyListIsNotMissing(t *testing.T) {
	v := List()
	if got := v.Elements(); got == nil || len(got) != 0 {
		t.Errorf("Elements() = %#v, want empty non-nil slice", got)
	}
	if v.Scalar() != "" {
		t.Errorf("Scalar() = %q, want empty", v.Scalar())
	}
}

func TestOptional(t *testing.T) {
	if Optional(nil).Elements() != nil {
		t.Error("Optional(nil) should be Missing")
	}
	s := "Bihar"
	if got := Optional(&s).Scalar(); got != "Bihar" {
		t.Errorf("Optional(&s).Scalar() = %q", got)
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Active", "active", true},
		{"INACTIVE", "inactive", true},
		{"Uttar Pradesh", "uttar pradesh", true},
		{"Active", "Inactive", false},
		{"", "", true},
	}
	for _, tc := range tests {
		if got := EqualFold(tc.a, tc.b); got != tc.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
