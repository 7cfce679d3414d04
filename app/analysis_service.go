package app

import (
	"context"
	"log"

	"residualmap/adapters/stats"
	"residualmap/domain/dataset"
	"residualmap/domain/residual"
	"residualmap/ports"
)

// AnalysisService orchestrates the residual pipeline: column selection and
// missing-value filtering, residual computation, and optional persistence.
type AnalysisService struct {
	analyzer *stats.Analyzer
	repo     ports.AnalysisRepository // nil disables persistence
}

// NewAnalysisService creates the service with the default gonum analyzer
func NewAnalysisService(repo ports.AnalysisRepository) *AnalysisService {
	return &AnalysisService{
		analyzer: stats.NewDefaultAnalyzer(),
		repo:     repo,
	}
}

// NewAnalysisServiceWith creates the service with an explicit analyzer
func NewAnalysisServiceWith(analyzer *stats.Analyzer, repo ports.AnalysisRepository) *AnalysisService {
	return &AnalysisService{analyzer: analyzer, repo: repo}
}

// Preprocess restricts the dataset to the two variables and drops rows with
// missing values in either column.
func (s *AnalysisService) Preprocess(d *dataset.Dataset, v1, v2 string) (*dataset.Dataset, error) {
	return dataset.Prepare(d, v1, v2)
}

// ComputeResiduals runs the analyzer on an already cleaned dataset
func (s *AnalysisService) ComputeResiduals(d *dataset.Dataset, col1, col2 string) (*residual.RecordSet, error) {
	return s.analyzer.ComputeResiduals(d, col1, col2)
}

// Run executes the full pipeline on a raw dataset and persists the analysis
// when a repository is configured.
func (s *AnalysisService) Run(ctx context.Context, d *dataset.Dataset, v1, v2 string) (*residual.Analysis, error) {
	clean, err := dataset.Prepare(d, v1, v2)
	if err != nil {
		return nil, err
	}
	log.Printf("[AnalysisService] %d of %d rows retained for %s x %s", clean.Len(), d.Len(), v1, v2)

	analysis, err := s.analyzer.Analyze(clean, v1, v2)
	if err != nil {
		return nil, err
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, analysis); err != nil {
			return nil, err
		}
		log.Printf("[AnalysisService] analysis %s saved", analysis.ID)
	}
	return analysis, nil
}
