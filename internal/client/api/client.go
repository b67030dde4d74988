// Package api is the HTTP client for the telemetry service.
package api

import (
	"context"
	"time"
)

// Run describes a test run as returned by the server.
type Run struct {
	ID        int64
	Name      string
	StartTime string
}

// Sample is one CPU reading attached to a run.
type Sample struct {
	ID           int64
	UsagePercent float64
	Timestamp    time.Time
}

// Client is the subset of the server API the monitor needs.
type Client interface {
	// Login authenticates and stores the bearer token for later calls.
	Login(ctx context.Context, username, password string) (fullName string, err error)

	// CreateRun starts a new test run. An empty name lets the server
	// pick a default.
	CreateRun(ctx context.Context, name string) (*Run, error)

	// EndRun marks the run as finished.
	EndRun(ctx context.Context, runID int64) error

	// RecordSample posts one CPU usage reading.
	RecordSample(ctx context.Context, runID int64, usagePercent float64) error
}
