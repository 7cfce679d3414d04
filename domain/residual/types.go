package residual

import (
	"fmt"
	"math"

	"residualmap/domain/core"
)

// SignificanceLevel is the fixed two-sided cutoff below which a cell's
// deviation is flagged.
const SignificanceLevel = 0.05

// Record is the standardized residual of one contingency-table cell.
// Label is non-empty exactly when PValue < SignificanceLevel.
type Record struct {
	Category1 string  `json:"category1"`
	Category2 string  `json:"category2"`
	Residual  float64 `json:"residual"`
	PValue    float64 `json:"p_value"`
	Label     string  `json:"label"`
}

// NewRecord builds a record and applies the significance label rule
func NewRecord(category1, category2 string, residual, pValue float64) Record {
	return Record{
		Category1: category1,
		Category2: category2,
		Residual:  residual,
		PValue:    pValue,
		Label:     FormatLabel(residual, pValue),
	}
}

// Significant reports whether the cell deviation is flagged
func (r Record) Significant() bool {
	return r.PValue < SignificanceLevel
}

// FormatLabel renders the two-line annotation for significant cells and the
// empty string otherwise.
func FormatLabel(residual, pValue float64) string {
	if pValue >= SignificanceLevel {
		return ""
	}
	return fmt.Sprintf("r=%.2f\np=%.3f", residual, pValue)
}

// RecordSet is the full residual collection for one variable pair, one record
// per contingency-table cell over the full cross-product of observed
// categories.
type RecordSet struct {
	Var1    string   `json:"var1"`
	Var2    string   `json:"var2"`
	Records []Record `json:"records"`
}

// Len returns the number of records
func (s *RecordSet) Len() int {
	return len(s.Records)
}

// MaxAbsResidual returns the largest residual magnitude in the set
func (s *RecordSet) MaxAbsResidual() float64 {
	maxAbs := 0.0
	for _, r := range s.Records {
		if abs := math.Abs(r.Residual); abs > maxAbs {
			maxAbs = abs
		}
	}
	return maxAbs
}

// Categories1 returns the distinct var1 categories in first-appearance order
func (s *RecordSet) Categories1() []string {
	return uniqueInOrder(s.Records, func(r Record) string { return r.Category1 })
}

// Categories2 returns the distinct var2 categories in first-appearance order
func (s *RecordSet) Categories2() []string {
	return uniqueInOrder(s.Records, func(r Record) string { return r.Category2 })
}

// Validate checks the fields renderers depend on. A failure here is a schema
// error; renderers must refuse to draw rather than drop data.
func (s *RecordSet) Validate() error {
	if s == nil || len(s.Records) == 0 {
		return core.NewSchemaError("record set is empty")
	}
	if s.Var1 == "" || s.Var2 == "" {
		return core.NewSchemaError("variable names are not set")
	}
	for i, r := range s.Records {
		if r.Category1 == "" || r.Category2 == "" {
			return core.NewSchemaError(fmt.Sprintf("record %d has empty category", i))
		}
		if math.IsNaN(r.Residual) || math.IsInf(r.Residual, 0) {
			return core.NewSchemaError(fmt.Sprintf("record %d has invalid residual", i))
		}
		if math.IsNaN(r.PValue) || r.PValue < 0 || r.PValue > 1 {
			return core.NewSchemaError(fmt.Sprintf("record %d has p-value outside [0,1]", i))
		}
	}
	return nil
}

func uniqueInOrder(records []Record, key func(Record) string) []string {
	seen := make(map[string]bool, len(records))
	var out []string
	for _, r := range records {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
