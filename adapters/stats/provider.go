package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"residualmap/domain/contingency"
	"residualmap/domain/core"
	"residualmap/ports"
)

// ChiSquareProvider computes standardized residuals and the chi-squared test
// of independence for a contingency table.
type ChiSquareProvider struct{}

// NewChiSquareProvider creates a new chi-squared provider
func NewChiSquareProvider() *ChiSquareProvider {
	return &ChiSquareProvider{}
}

// StandardizedResiduals returns (observed - expected) / sqrt(expected) per
// cell, where expected = rowTotal * colTotal / grandTotal under independence.
// A zero row or column marginal makes the expected frequency undefined and is
// reported as an analysis error instead of a NaN matrix.
func (p *ChiSquareProvider) StandardizedResiduals(t *contingency.Table) ([][]float64, error) {
	expected, err := p.expectedFrequencies(t)
	if err != nil {
		return nil, err
	}

	residuals := make([][]float64, t.NumRows())
	for i := range residuals {
		residuals[i] = make([]float64, t.NumCols())
		for j := range residuals[i] {
			observed := float64(t.Counts[i][j])
			residuals[i][j] = (observed - expected[i][j]) / math.Sqrt(expected[i][j])
		}
	}
	return residuals, nil
}

// Test computes the chi-squared independence statistic, degrees of freedom
// and p-value for the table.
func (p *ChiSquareProvider) Test(t *contingency.Table) (ports.ChiSquareSummary, error) {
	expected, err := p.expectedFrequencies(t)
	if err != nil {
		return ports.ChiSquareSummary{}, err
	}

	chiSq := 0.0
	for i := range t.Counts {
		for j := range t.Counts[i] {
			observed := float64(t.Counts[i][j])
			diff := observed - expected[i][j]
			chiSq += diff * diff / expected[i][j]
		}
	}

	df := (t.NumRows() - 1) * (t.NumCols() - 1)
	pValue := 1.0
	if df > 0 {
		dist := distuv.ChiSquared{K: float64(df)}
		pValue = 1 - dist.CDF(chiSq)
	}

	return ports.ChiSquareSummary{Statistic: chiSq, DF: df, PValue: pValue}, nil
}

// expectedFrequencies computes the independence-expected count per cell,
// failing on degenerate tables.
func (p *ChiSquareProvider) expectedFrequencies(t *contingency.Table) ([][]float64, error) {
	if t.NumRows() == 0 || t.NumCols() == 0 {
		return nil, core.NewAnalysisError("contingency table is empty")
	}

	rowTotals := t.RowTotals()
	colTotals := t.ColTotals()
	grand := t.GrandTotal()
	if grand == 0 {
		return nil, core.NewAnalysisError("contingency table has no observations")
	}

	for i, n := range rowTotals {
		if n == 0 {
			return nil, core.NewAnalysisError(fmt.Sprintf("zero marginal for row category %q", t.RowCats[i]))
		}
	}
	for j, n := range colTotals {
		if n == 0 {
			return nil, core.NewAnalysisError(fmt.Sprintf("zero marginal for column category %q", t.ColCats[j]))
		}
	}

	expected := make([][]float64, t.NumRows())
	for i := range expected {
		expected[i] = make([]float64, t.NumCols())
		for j := range expected[i] {
			expected[i][j] = float64(rowTotals[i]*colTotals[j]) / float64(grand)
		}
	}
	return expected, nil
}
