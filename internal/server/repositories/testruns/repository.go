// Package testruns contains the persistence layer for test-run sessions.
package testruns

import (
	"context"

	"github.com/dmitrijs2005/loadwatch/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, name string) (*models.TestRun, error)
	Get(ctx context.Context, id int64) (*models.TestRun, error)
	// End stamps end_time with the database clock and returns the
	// updated row. The caller is responsible for checking that the run
	// has not already ended.
	End(ctx context.Context, id int64) (*models.TestRun, error)
}
