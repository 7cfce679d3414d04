package ports

import (
	"context"

	"residualmap/domain/core"
	"residualmap/domain/residual"
)

// AnalysisRepository persists completed residual analyses
type AnalysisRepository interface {
	Save(ctx context.Context, a *residual.Analysis) error
	GetByID(ctx context.Context, id core.AnalysisID) (*residual.Analysis, error)
	List(ctx context.Context, limit, offset int) ([]*residual.Analysis, error)
}
