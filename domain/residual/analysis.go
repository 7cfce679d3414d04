package residual

import (
	"residualmap/domain/core"
)

// Analysis is the persisted artifact of one residual computation: the record
// set plus the chi-squared summary of the table it came from.
type Analysis struct {
	ID         core.AnalysisID `json:"id"`
	Var1       string          `json:"var1"`
	Var2       string          `json:"var2"`
	ChiSquare  float64         `json:"chi_square"`
	DF         int             `json:"degrees_freedom"`
	PValue     float64         `json:"p_value"`
	SampleSize int             `json:"sample_size"`
	Records    RecordSet       `json:"records"`
	CreatedAt  core.Timestamp  `json:"created_at"`
}

// NewAnalysis creates an analysis artifact with a fresh identifier
func NewAnalysis(set RecordSet, chiSquare float64, df, sampleSize int, pValue float64) *Analysis {
	return &Analysis{
		ID:         core.AnalysisID(core.NewID()),
		Var1:       set.Var1,
		Var2:       set.Var2,
		ChiSquare:  chiSquare,
		DF:         df,
		PValue:     pValue,
		SampleSize: sampleSize,
		Records:    set,
		CreatedAt:  core.Now(),
	}
}

// SignificantRecords returns the records flagged at the significance cutoff
func (a *Analysis) SignificantRecords() []Record {
	var out []Record
	for _, r := range a.Records.Records {
		if r.Significant() {
			out = append(out, r)
		}
	}
	return out
}
