package dataset

import (
	"errors"
	"testing"

	"residualmap/domain/core"
)

func threeColumnDataset() *Dataset {
	d := New("AgeGroup", "Symptom", "Outcome")
	d.Append(Row{"AgeGroup": StringValue("Young"), "Symptom": StringValue("Fever"), "Outcome": StringValue("Recovered")})
	d.Append(Row{"AgeGroup": StringValue("Old"), "Symptom": {}, "Outcome": StringValue("Recovered")})
	d.Append(Row{"AgeGroup": {}, "Symptom": StringValue("Cough"), "Outcome": StringValue("Ongoing")})
	d.Append(Row{"AgeGroup": StringValue("Old"), "Symptom": StringValue("Cough"), "Outcome": StringValue("Ongoing")})
	return d
}

func TestPrepareDropsMissingAndRestricts(t *testing.T) {
	clean, err := Prepare(threeColumnDataset(), "AgeGroup", "Symptom")
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if clean.Len() != 2 {
		t.Errorf("expected 2 retained rows, got %d", clean.Len())
	}
	if len(clean.Columns) != 2 {
		t.Errorf("expected 2 columns, got %v", clean.Columns)
	}
	if clean.HasColumn("Outcome") {
		t.Error("Outcome column should have been dropped")
	}
	for _, col := range []string{"AgeGroup", "Symptom"} {
		if err := CheckNoMissing(clean, col); err != nil {
			t.Errorf("prepared dataset still has missing values in %s: %v", col, err)
		}
	}
}

func TestPrepareDoesNotModifyInput(t *testing.T) {
	d := threeColumnDataset()
	if _, err := Prepare(d, "AgeGroup", "Symptom"); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if d.Len() != 4 {
		t.Errorf("input dataset was modified, now %d rows", d.Len())
	}
}

func TestPrepareUnknownColumn(t *testing.T) {
	_, err := Prepare(threeColumnDataset(), "AgeGroup", "Severity")
	if !errors.Is(err, core.ErrMissingVariable) {
		t.Fatalf("expected ErrMissingVariable, got %v", err)
	}
	if !core.IsValidationError(err) {
		t.Error("missing variable must classify as a validation error")
	}
}

func TestCheckCategoricalRejectsNumeric(t *testing.T) {
	d := New("Age")
	d.Append(Row{"Age": ParseValue("42")})

	err := CheckCategorical(d, "Age")
	if !errors.Is(err, core.ErrNotCategorical) {
		t.Fatalf("expected ErrNotCategorical, got %v", err)
	}
}

func TestCheckNoMissingReportsRow(t *testing.T) {
	d := New("Symptom")
	d.Append(Row{"Symptom": StringValue("Fever")})
	d.Append(Row{"Symptom": {}})

	err := CheckNoMissing(d, "Symptom")
	if !errors.Is(err, core.ErrMissingValue) {
		t.Fatalf("expected ErrMissingValue, got %v", err)
	}
}
