package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"residualmap/domain/core"
	"residualmap/domain/residual"
	"residualmap/ports"
)

// analysisRepository implements the AnalysisRepository interface
type analysisRepository struct {
	db *sqlx.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *sqlx.DB) ports.AnalysisRepository {
	return &analysisRepository{db: db}
}

// Save inserts a completed analysis into the database
func (r *analysisRepository) Save(ctx context.Context, a *residual.Analysis) error {
	recordsJSON, err := json.Marshal(a.Records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	query := `INSERT INTO analyses (
		id, var1, var2, chi_square, degrees_freedom, p_value, sample_size, records, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.ExecContext(ctx, query,
		a.ID.String(), a.Var1, a.Var2, a.ChiSquare, a.DF, a.PValue, a.SampleSize, recordsJSON, a.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetByID retrieves an analysis by its ID
func (r *analysisRepository) GetByID(ctx context.Context, id core.AnalysisID) (*residual.Analysis, error) {
	query := `SELECT id, var1, var2, chi_square, degrees_freedom, p_value, sample_size, records, created_at
	FROM analyses WHERE id = $1`

	var row analysisRow
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", core.ErrAnalysisNotFound, id)
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return row.toDomain()
}

// List retrieves analyses ordered by recency
func (r *analysisRepository) List(ctx context.Context, limit, offset int) ([]*residual.Analysis, error) {
	query := `SELECT id, var1, var2, chi_square, degrees_freedom, p_value, sample_size, records, created_at
	FROM analyses ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var rows []analysisRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	out := make([]*residual.Analysis, 0, len(rows))
	for _, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// analysisRow is the sqlx scan target for the analyses table
type analysisRow struct {
	ID         string       `db:"id"`
	Var1       string       `db:"var1"`
	Var2       string       `db:"var2"`
	ChiSquare  float64      `db:"chi_square"`
	DF         int          `db:"degrees_freedom"`
	PValue     float64      `db:"p_value"`
	SampleSize int          `db:"sample_size"`
	Records    []byte       `db:"records"`
	CreatedAt  sql.NullTime `db:"created_at"`
}

func (row analysisRow) toDomain() (*residual.Analysis, error) {
	var set residual.RecordSet
	if err := json.Unmarshal(row.Records, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}
	return &residual.Analysis{
		ID:         core.AnalysisID(row.ID),
		Var1:       row.Var1,
		Var2:       row.Var2,
		ChiSquare:  row.ChiSquare,
		DF:         row.DF,
		PValue:     row.PValue,
		SampleSize: row.SampleSize,
		Records:    set,
		CreatedAt:  core.NewTimestamp(row.CreatedAt.Time),
	}, nil
}
