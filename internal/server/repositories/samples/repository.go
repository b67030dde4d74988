// Package samples contains the persistence layer for CPU-usage samples.
package samples

import (
	"context"

	"github.com/dmitrijs2005/loadwatch/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, runID int64, usagePercent float64) (*models.CPUSample, error)
	// ListByRun returns every sample for the run in insertion order.
	ListByRun(ctx context.Context, runID int64) ([]*models.CPUSample, error)
}
