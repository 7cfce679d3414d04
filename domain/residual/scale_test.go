package residual

import (
	"math"
	"testing"
)

func TestDivergingDomainIsSymmetric(t *testing.T) {
	set := &RecordSet{
		Var1: "A",
		Var2: "B",
		Records: []Record{
			NewRecord("x", "y", -3.1, 0.01),
			NewRecord("x", "z", 0.4, 0.7),
			NewRecord("w", "y", 2.0, 0.05),
		},
	}

	lo, hi := DivergingDomain(set)
	if lo != -3.1 || hi != 3.1 {
		t.Errorf("domain = [%v, %v], want [-3.1, 3.1]", lo, hi)
	}
}

func TestRescaleWidthsLinear(t *testing.T) {
	got := RescaleWidths([]float64{0.5, 1.0, 4.0}, 1, 5)

	want := []float64{1, 1 + 4*0.5/3.5, 5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("width[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRescaleWidthsConstantInput(t *testing.T) {
	got := RescaleWidths([]float64{2, 2, 2}, 1, 5)
	for i, w := range got {
		if w != 3 {
			t.Errorf("width[%d] = %v, want midpoint 3", i, w)
		}
	}
}

func TestRescaleWidthsEmpty(t *testing.T) {
	if got := RescaleWidths(nil, 1, 5); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestMagnitudes(t *testing.T) {
	set := &RecordSet{
		Var1: "A",
		Var2: "B",
		Records: []Record{
			NewRecord("x", "y", -2.0, 0.046),
			NewRecord("x", "z", 1.5, 0.13),
		},
	}

	got := Magnitudes(set)
	if got[0] != 2.0 || got[1] != 1.5 {
		t.Errorf("magnitudes = %v", got)
	}
}
