package testkit

import (
	"residualmap/domain/contingency"
	"residualmap/domain/dataset"
)

// JointCount is one cell of a synthetic joint distribution
type JointCount struct {
	Cat1  string
	Cat2  string
	Count int
}

// MakeDataset expands joint counts into a two-column dataset. Row order
// follows the given cells so category appearance order is deterministic.
func MakeDataset(col1, col2 string, cells []JointCount) *dataset.Dataset {
	ds := dataset.New(col1, col2)
	for _, c := range cells {
		for i := 0; i < c.Count; i++ {
			ds.Append(dataset.Row{
				col1: dataset.StringValue(c.Cat1),
				col2: dataset.StringValue(c.Cat2),
			})
		}
	}
	return ds
}

// SymptomDataset is the canonical 20-row AgeGroup x Symptom fixture with a
// joint distribution skewed enough that exactly two cells clear the 0.05
// cutoff (|r|=2.0 on the Cough column) while the Fever cells stay below it
// (|r|~1.63). The Young/Cough cell has zero observations and must still
// receive a record.
func SymptomDataset() *dataset.Dataset {
	return MakeDataset("AgeGroup", "Symptom", []JointCount{
		{"Young", "Fever", 10},
		{"Old", "Fever", 2},
		{"Old", "Cough", 8},
	})
}

// BalancedDataset has a perfectly independent joint distribution: every
// residual is zero and every p-value is one.
func BalancedDataset() *dataset.Dataset {
	return MakeDataset("AgeGroup", "Symptom", []JointCount{
		{"Young", "Fever", 5},
		{"Young", "Cough", 5},
		{"Old", "Fever", 5},
		{"Old", "Cough", 5},
	})
}

// ConstantColumnDataset holds a single constant category in the first column.
// The resulting 1 x N table matches its expectation exactly, so the defined
// result is all-zero residuals rather than an error.
func ConstantColumnDataset() *dataset.Dataset {
	return MakeDataset("AgeGroup", "Symptom", []JointCount{
		{"Young", "Fever", 6},
		{"Young", "Cough", 4},
	})
}

// MissingValueDataset contains a row with a missing Symptom value
func MissingValueDataset() *dataset.Dataset {
	ds := MakeDataset("AgeGroup", "Symptom", []JointCount{
		{"Young", "Fever", 3},
		{"Old", "Cough", 3},
	})
	ds.Append(dataset.Row{
		"AgeGroup": dataset.StringValue("Young"),
		"Symptom":  {},
	})
	return ds
}

// DegenerateTable builds a contingency table with a zero row marginal, which
// no dataset-derived table can produce but a provider must still reject.
func DegenerateTable() *contingency.Table {
	return &contingency.Table{
		RowCats: []string{"A", "B"},
		ColCats: []string{"X", "Y"},
		Counts:  [][]int{{3, 2}, {0, 0}},
	}
}

// StubProvider returns a fixed residual matrix, or a fixed error
type StubProvider struct {
	Matrix [][]float64
	Err    error
}

func (s *StubProvider) StandardizedResiduals(t *contingency.Table) ([][]float64, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Matrix, nil
}

// StubCDF is a normal-CDF stand-in with a fixed lookup, defaulting to 0.5
type StubCDF struct {
	Values map[float64]float64
}

func (s *StubCDF) CDF(x float64) float64 {
	if v, ok := s.Values[x]; ok {
		return v
	}
	return 0.5
}
