package models

import "time"

// CPUSample is one CPU-utilization reading attached to a test run.
// Samples are append-only; Timestamp is assigned by the database at
// insert time.
type CPUSample struct {
	ID           int64
	TestRunID    int64
	UsagePercent float64
	Timestamp    time.Time
}
