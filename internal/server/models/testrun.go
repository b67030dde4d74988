package models

import (
	"database/sql"
	"time"
)

// TestRun is a named monitoring session. StartTime is assigned at
// creation; EndTime is set at most once by the end-run operation.
type TestRun struct {
	ID        int64
	Name      string
	StartTime time.Time
	EndTime   sql.NullTime
}

// Ended reports whether the run has already been closed.
func (r *TestRun) Ended() bool {
	return r.EndTime.Valid
}
