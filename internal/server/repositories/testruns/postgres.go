package testruns

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/loadwatch/internal/common"
	"github.com/dmitrijs2005/loadwatch/internal/dbx"
	"github.com/dmitrijs2005/loadwatch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, name string) (*models.TestRun, error) {
	query :=
		`INSERT INTO test_runs (name)
		 VALUES ($1)
		 RETURNING id, start_time
		 `

	run := &models.TestRun{Name: name}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&run.ID, &run.StartTime)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return run, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.TestRun, error) {
	query :=
		`SELECT id, name, start_time, end_time FROM test_runs
		 WHERE id = $1
		 `

	run := &models.TestRun{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&run.ID, &run.Name, &run.StartTime, &run.EndTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return run, nil
}

func (r *PostgresRepository) End(ctx context.Context, id int64) (*models.TestRun, error) {
	query :=
		`UPDATE test_runs SET end_time = now()
		 WHERE id = $1
		 RETURNING id, name, start_time, end_time
		 `

	run := &models.TestRun{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&run.ID, &run.Name, &run.StartTime, &run.EndTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return run, nil
}
