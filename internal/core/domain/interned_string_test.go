package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/mk/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("nbody-c")
	b := domain.NewInternedString("nbody-c")

	if a != b {
		t.Error("expected identical interned strings to compare equal")
	}

	if a.String() != "nbody-c" {
		t.Errorf("unexpected value: %q", a.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	if zero.String() != "" {
		t.Errorf("expected empty string for zero value, got %q", zero.String())
	}
}

func TestInternedString_JSONRoundtrip(t *testing.T) {
	original := domain.NewInternedString("nbody-rs")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded domain.InternedString
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded != original {
		t.Errorf("roundtrip mismatch: got %q", decoded.String())
	}
}
