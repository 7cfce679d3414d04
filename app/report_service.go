package app

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"residualmap/domain/residual"
)

// ReportService writes a short association brief for an analysis, as
// markdown or rendered HTML.
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildMarkdown summarizes the chi-squared result and the flagged cells
func (s *ReportService) BuildMarkdown(a *residual.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Association brief: %s x %s\n\n", a.Var1, a.Var2)
	fmt.Fprintf(&b, "Chi-squared test of independence: X2=%.3f, df=%d, p=%.4f (n=%d).\n\n",
		a.ChiSquare, a.DF, a.PValue, a.SampleSize)

	significant := a.SignificantRecords()
	if len(significant) == 0 {
		b.WriteString("No cell deviates from independence at the 0.05 level.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Cells flagged at p < %.2f\n\n", residual.SignificanceLevel)
	b.WriteString("| " + a.Var1 + " | " + a.Var2 + " | residual | p |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, r := range significant {
		direction := "over-represented"
		if r.Residual < 0 {
			direction = "under-represented"
		}
		fmt.Fprintf(&b, "| %s | %s | %.2f (%s) | %.3f |\n",
			r.Category1, r.Category2, r.Residual, direction, r.PValue)
	}
	return b.String()
}

// RenderHTML converts the markdown brief into a standalone HTML fragment
func (s *ReportService) RenderHTML(a *residual.Analysis) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(s.BuildMarkdown(a)), p, renderer)
}
