package core

import (
	"testing"
)

func TestNewIDIsUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a.IsEmpty() || b.IsEmpty() {
		t.Fatal("generated ID is empty")
	}
	if a == b {
		t.Error("consecutive IDs collided")
	}
}

func TestParseAnalysisID(t *testing.T) {
	if _, err := ParseAnalysisID(""); err == nil {
		t.Error("empty analysis ID must be rejected")
	}
	if _, err := ParseAnalysisID("  "); err == nil {
		t.Error("blank analysis ID must be rejected")
	}
	id, err := ParseAnalysisID("abc-123")
	if err != nil || id.String() != "abc-123" {
		t.Errorf("ParseAnalysisID = %q, %v", id, err)
	}
}

func TestParseVariableKey(t *testing.T) {
	if _, err := ParseVariableKey(""); err == nil {
		t.Error("empty variable key must be rejected")
	}
	key, err := ParseVariableKey("AgeGroup")
	if err != nil || key.String() != "AgeGroup" {
		t.Errorf("ParseVariableKey = %q, %v", key, err)
	}
}
