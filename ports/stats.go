package ports

import (
	"residualmap/domain/contingency"
)

// ResidualProvider computes the standardized (Pearson) residual matrix of a
// contingency table under the independence expectation. The matrix is indexed
// [row category][column category] matching the table's category order.
// Implementations must fail on degenerate tables (a zero marginal) rather
// than emit NaNs.
type ResidualProvider interface {
	StandardizedResiduals(t *contingency.Table) ([][]float64, error)
}

// ChiSquareSummary is the table-level test result a TestProvider reports
type ChiSquareSummary struct {
	Statistic float64
	DF        int
	PValue    float64
}

// TestProvider extends ResidualProvider with the table-level chi-squared test
type TestProvider interface {
	ResidualProvider
	Test(t *contingency.Table) (ChiSquareSummary, error)
}

// NormalCDF evaluates the standard normal cumulative distribution function.
// The residual p-value rule 2*(1-CDF(|r|)) is defined against this capability
// so the core stays provider-agnostic.
type NormalCDF interface {
	CDF(x float64) float64
}
