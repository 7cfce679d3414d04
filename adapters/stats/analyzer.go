package stats

import (
	"math"

	"residualmap/domain/contingency"
	"residualmap/domain/dataset"
	"residualmap/domain/residual"
	"residualmap/ports"
)

// Analyzer turns a cleaned two-column dataset into a residual record set.
// The chi-squared computation and the normal CDF are injected so the core
// logic stays provider-agnostic and testable with stubs.
type Analyzer struct {
	provider ports.ResidualProvider
	cdf      ports.NormalCDF
}

// NewAnalyzer creates an analyzer with the given providers
func NewAnalyzer(provider ports.ResidualProvider, cdf ports.NormalCDF) *Analyzer {
	return &Analyzer{provider: provider, cdf: cdf}
}

// NewDefaultAnalyzer wires the gonum-backed providers
func NewDefaultAnalyzer() *Analyzer {
	return NewAnalyzer(NewChiSquareProvider(), NewNormalCDF())
}

// ComputeResiduals validates the dataset, builds the contingency table and
// emits one record per cell over the full cross-product of observed
// categories. Cells with zero observed count keep their provider-defined
// residual; no cell is dropped.
//
// Validation fails fast with a distinct error kind per failure: column
// existence, categorical type, then missing values. The missing-value check
// is defense-in-depth for callers that skipped dataset.Prepare.
func (a *Analyzer) ComputeResiduals(d *dataset.Dataset, col1, col2 string) (*residual.RecordSet, error) {
	if err := a.validate(d, col1, col2); err != nil {
		return nil, err
	}

	table, err := contingency.Build(d, col1, col2)
	if err != nil {
		return nil, err
	}

	return a.recordsFromTable(table, col1, col2)
}

// Analyze runs ComputeResiduals and wraps the result in a persisted-form
// artifact including the table-level chi-squared summary when the provider
// supports it.
func (a *Analyzer) Analyze(d *dataset.Dataset, col1, col2 string) (*residual.Analysis, error) {
	if err := a.validate(d, col1, col2); err != nil {
		return nil, err
	}

	table, err := contingency.Build(d, col1, col2)
	if err != nil {
		return nil, err
	}

	set, err := a.recordsFromTable(table, col1, col2)
	if err != nil {
		return nil, err
	}

	summary := ports.ChiSquareSummary{PValue: 1}
	if tp, ok := a.provider.(ports.TestProvider); ok {
		summary, err = tp.Test(table)
		if err != nil {
			return nil, err
		}
	}

	return residual.NewAnalysis(*set, summary.Statistic, summary.DF, table.GrandTotal(), summary.PValue), nil
}

func (a *Analyzer) validate(d *dataset.Dataset, col1, col2 string) error {
	if err := dataset.CheckColumns(d, col1, col2); err != nil {
		return err
	}
	for _, col := range []string{col1, col2} {
		if err := dataset.CheckCategorical(d, col); err != nil {
			return err
		}
	}
	for _, col := range []string{col1, col2} {
		if err := dataset.CheckNoMissing(d, col); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) recordsFromTable(table *contingency.Table, col1, col2 string) (*residual.RecordSet, error) {
	residuals, err := a.provider.StandardizedResiduals(table)
	if err != nil {
		return nil, err
	}

	set := &residual.RecordSet{Var1: col1, Var2: col2}
	for i, cat1 := range table.RowCats {
		for j, cat2 := range table.ColCats {
			r := residuals[i][j]
			set.Records = append(set.Records, residual.NewRecord(cat1, cat2, r, a.pValue(r)))
		}
	}
	return set, nil
}

// pValue applies the symmetric normal-approximation rule 2*(1-CDF(|r|)).
// This is deliberately not an exact per-cell chi-squared p-value; the
// approximation is part of the output contract and is clamped into [0,1].
func (a *Analyzer) pValue(r float64) float64 {
	p := 2 * (1 - a.cdf.CDF(math.Abs(r)))
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
