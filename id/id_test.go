package id_test

import (
	"strings"
	"testing"

	"github.com/xraph/rolodex/id"
)

func TestNewContactID(t *testing.T) {
	got := id.NewContactID()
	if got.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if got.Prefix() != id.PrefixContact {
		t.Errorf("expected prefix %q, got %q", id.PrefixContact, got.Prefix())
	}
	if !strings.HasPrefix(got.String(), "cont_") {
		t.Errorf("expected cont_ prefix, got %q", got.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	original := id.NewContactID()
	parsed, err := id.ParseContactID(original.String())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.String() != original.String() {
		t.Errorf("round-trip mismatch: %q != %q", parsed.String(), original.String())
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "not-a-typeid"},
		{"wrong prefix", id.New("user").String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := id.ParseContactID(tt.input)
			if err == nil {
				t.Errorf("expected error for %q, got nil", tt.input)
			}
		})
	}
}

func TestMarshalText(t *testing.T) {
	original := id.NewContactID()

	data, err := original.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var parsed id.ID
	if err := parsed.UnmarshalText(data); err != nil {
		t.Fatal(err)
	}
	if parsed.String() != original.String() {
		t.Errorf("text round-trip mismatch: %q != %q", parsed.String(), original.String())
	}
}

func TestNilID(t *testing.T) {
	if !id.Nil.IsNil() {
		t.Fatal("expected Nil to be nil")
	}
	if id.Nil.String() != "" {
		t.Errorf("expected empty string, got %q", id.Nil.String())
	}

	var parsed id.ID
	if err := parsed.UnmarshalText(nil); err != nil {
		t.Fatal(err)
	}
	if !parsed.IsNil() {
		t.Fatal("expected nil after unmarshaling empty text")
	}
}

func TestScanValue(t *testing.T) {
	original := id.NewContactID()

	v, err := original.Value()
	if err != nil {
		t.Fatal(err)
	}

	var scanned id.ID
	if err := scanned.Scan(v); err != nil {
		t.Fatal(err)
	}
	if scanned.String() != original.String() {
		t.Errorf("scan round-trip mismatch: %q != %q", scanned.String(), original.String())
	}

	var fromNil id.ID
	if err := fromNil.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !fromNil.IsNil() {
		t.Fatal("expected nil after scanning NULL")
	}
}
