package residual

import (
	"math"
	"reflect"
	"testing"

	"residualmap/domain/core"
)

func TestFormatLabelCutoff(t *testing.T) {
	if got := FormatLabel(2.0, 0.046); got != "r=2.00\np=0.046" {
		t.Errorf("significant label = %q", got)
	}
	if got := FormatLabel(-2.0, 0.046); got != "r=-2.00\np=0.046" {
		t.Errorf("negative residual label = %q", got)
	}
	if got := FormatLabel(1.96, 0.05); got != "" {
		t.Errorf("p equal to the cutoff must not be labeled, got %q", got)
	}
	if got := FormatLabel(0.5, 0.617); got != "" {
		t.Errorf("nonsignificant cell must have empty label, got %q", got)
	}
}

func TestNewRecordAppliesLabelRule(t *testing.T) {
	sig := NewRecord("Young", "Cough", -2.0, 0.0455)
	if !sig.Significant() || sig.Label == "" {
		t.Errorf("expected significant labeled record, got %+v", sig)
	}

	nonsig := NewRecord("Young", "Fever", 1.63, 0.1025)
	if nonsig.Significant() || nonsig.Label != "" {
		t.Errorf("expected unlabeled record, got %+v", nonsig)
	}
}

func TestRecordSetCategoriesOrder(t *testing.T) {
	set := &RecordSet{
		Var1: "AgeGroup",
		Var2: "Symptom",
		Records: []Record{
			NewRecord("Young", "Fever", 1.63, 0.10),
			NewRecord("Young", "Cough", -2.0, 0.046),
			NewRecord("Old", "Fever", -1.63, 0.10),
			NewRecord("Old", "Cough", 2.0, 0.046),
		},
	}

	if got := set.Categories1(); !reflect.DeepEqual(got, []string{"Young", "Old"}) {
		t.Errorf("Categories1 = %v", got)
	}
	if got := set.Categories2(); !reflect.DeepEqual(got, []string{"Fever", "Cough"}) {
		t.Errorf("Categories2 = %v", got)
	}
	if got := set.MaxAbsResidual(); got != 2.0 {
		t.Errorf("MaxAbsResidual = %v, want 2.0", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *RecordSet {
		return &RecordSet{
			Var1:    "A",
			Var2:    "B",
			Records: []Record{NewRecord("x", "y", 1.0, 0.3)},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RecordSet)
	}{
		{"empty records", func(s *RecordSet) { s.Records = nil }},
		{"missing variable name", func(s *RecordSet) { s.Var1 = "" }},
		{"empty category", func(s *RecordSet) { s.Records[0].Category2 = "" }},
		{"NaN residual", func(s *RecordSet) { s.Records[0].Residual = math.NaN() }},
		{"infinite residual", func(s *RecordSet) { s.Records[0].Residual = math.Inf(1) }},
		{"p-value above one", func(s *RecordSet) { s.Records[0].PValue = 1.5 }},
		{"negative p-value", func(s *RecordSet) { s.Records[0].PValue = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if !core.IsSchemaError(err) {
				t.Errorf("expected schema error, got %v", err)
			}
		})
	}
}
