package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/loadwatch/internal/common"
	"github.com/dmitrijs2005/loadwatch/internal/dbx"
	"github.com/dmitrijs2005/loadwatch/internal/server/models"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/repomanager"
)

// RunService implements the test-run lifecycle: create once, end once.
type RunService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRunService(db *sql.DB, m repomanager.RepositoryManager) *RunService {
	return &RunService{db: db, repomanager: m}
}

// CreateRun starts a new run. An empty name gets the default
// "TestRun_<unix seconds>". Names are not unique.
func (s *RunService) CreateRun(ctx context.Context, name string) (*models.TestRun, error) {
	if name == "" {
		name = fmt.Sprintf("TestRun_%d", time.Now().Unix())
	}

	run, err := s.repomanager.TestRuns(s.db).Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error creating test run: %w", err)
	}

	return run, nil
}

// EndRun stamps the run's end time. Ending a run twice is an error, not a
// no-op. The check and the update share one transaction; two racing
// EndRun calls can still both observe an open run, which matches the
// documented behavior of the API.
func (s *RunService) EndRun(ctx context.Context, id int64) (*models.TestRun, error) {
	var run *models.TestRun

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.TestRuns(tx)

		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if current.Ended() {
			return common.ErrorAlreadyEnded
		}

		run, err = repo.End(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return run, nil
}
