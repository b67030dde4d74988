package samples

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/loadwatch/internal/dbx"
	"github.com/dmitrijs2005/loadwatch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, runID int64, usagePercent float64) (*models.CPUSample, error) {
	query :=
		`INSERT INTO cpu_usage (test_run_id, usage_percent)
		 VALUES ($1, $2)
		 RETURNING id, timestamp
		 `

	sample := &models.CPUSample{TestRunID: runID, UsagePercent: usagePercent}
	err := r.db.QueryRowContext(ctx, query, runID, usagePercent).
		Scan(&sample.ID, &sample.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sample, nil
}

func (r *PostgresRepository) ListByRun(ctx context.Context, runID int64) ([]*models.CPUSample, error) {
	query :=
		`SELECT id, test_run_id, usage_percent, timestamp FROM cpu_usage
		 WHERE test_run_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.CPUSample
	for rows.Next() {
		sample := &models.CPUSample{}
		if err := rows.Scan(&sample.ID, &sample.TestRunID, &sample.UsagePercent, &sample.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
