package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/loadwatch/internal/dbx"
	"github.com/dmitrijs2005/loadwatch/internal/server/models"
	"github.com/dmitrijs2005/loadwatch/internal/server/repositories/repomanager"
)

// SampleService ingests and reads back CPU samples for a run.
type SampleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSampleService(db *sql.DB, m repomanager.RepositoryManager) *SampleService {
	return &SampleService{db: db, repomanager: m}
}

// RecordSample appends one reading to the run. The run must exist but may
// already have ended; late samples are accepted. The timestamp is
// assigned by the database.
func (s *SampleService) RecordSample(ctx context.Context, runID int64, usagePercent float64) (*models.CPUSample, error) {
	var sample *models.CPUSample

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.TestRuns(tx).Get(ctx, runID); err != nil {
			return err
		}

		var err error
		sample, err = s.repomanager.Samples(tx).Create(ctx, runID, usagePercent)
		return err
	})
	if err != nil {
		return nil, err
	}

	return sample, nil
}

// ListSamples returns the run's name and every sample in insertion order,
// whether or not the run has ended.
func (s *SampleService) ListSamples(ctx context.Context, runID int64) (string, []*models.CPUSample, error) {
	run, err := s.repomanager.TestRuns(s.db).Get(ctx, runID)
	if err != nil {
		return "", nil, err
	}

	list, err := s.repomanager.Samples(s.db).ListByRun(ctx, runID)
	if err != nil {
		return "", nil, fmt.Errorf("error listing samples: %w", err)
	}

	return run.Name, list, nil
}
