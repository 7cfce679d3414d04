package dataset

import (
	"testing"
)

func TestParseValueClassification(t *testing.T) {
	tests := []struct {
		raw  string
		kind ValueKind
	}{
		{"Young", KindString},
		{"  Old  ", KindString},
		{"42", KindNumeric},
		{"3.14", KindNumeric},
		{"-0.5", KindNumeric},
		{"", KindMissing},
		{"  ", KindMissing},
		{"NA", KindMissing},
		{"n/a", KindMissing},
		{"NaN", KindMissing},
		{"null", KindMissing},
	}

	for _, tt := range tests {
		v := ParseValue(tt.raw)
		if v.Kind != tt.kind {
			t.Errorf("ParseValue(%q): got kind %d, want %d", tt.raw, v.Kind, tt.kind)
		}
	}
}

func TestParseValueTrimsRaw(t *testing.T) {
	v := ParseValue("  Fever ")
	if v.Raw != "Fever" {
		t.Errorf("expected trimmed raw, got %q", v.Raw)
	}
}

func TestStringValueBypassesNumericDetection(t *testing.T) {
	v := StringValue("42")
	if v.Kind != KindString {
		t.Errorf("StringValue must not classify numerals as numeric, got kind %d", v.Kind)
	}
	if StringValue("na").Kind != KindMissing {
		t.Error("StringValue should still honor missing tokens")
	}
}

func TestColumnYieldsMissingForAbsentKeys(t *testing.T) {
	d := New("A", "B")
	d.Append(Row{"A": StringValue("x")})

	col := d.Column("B")
	if len(col) != 1 || !col[0].Missing() {
		t.Fatalf("expected one missing value, got %+v", col)
	}
}

func TestHasColumn(t *testing.T) {
	d := New("AgeGroup", "Symptom")
	if !d.HasColumn("Symptom") {
		t.Error("expected Symptom column to exist")
	}
	if d.HasColumn("Outcome") {
		t.Error("did not expect Outcome column")
	}
}
