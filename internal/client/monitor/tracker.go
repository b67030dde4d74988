package monitor

import "time"

// thresholdTracker accumulates the total time CPU usage spends above a
// configured threshold. It is driven by Observe once per sample and
// closed out with Flush when monitoring stops.
type thresholdTracker struct {
	threshold  float64
	aboveSince time.Time
	above      bool
	total      time.Duration
}

func newThresholdTracker(threshold float64) *thresholdTracker {
	return &thresholdTracker{threshold: threshold}
}

// Observe records one usage reading taken at now. It returns true
// exactly when the reading starts a new above-threshold interval, so
// the caller can emit a one-time warning.
func (t *thresholdTracker) Observe(usage float64, now time.Time) bool {
	if usage > t.threshold {
		if !t.above {
			t.above = true
			t.aboveSince = now
			return true
		}
		return false
	}

	if t.above {
		t.total += now.Sub(t.aboveSince)
		t.above = false
	}
	return false
}

// Flush closes the open above-threshold interval, if any. Safe to call
// when usage is currently below the threshold.
func (t *thresholdTracker) Flush(now time.Time) {
	if t.above {
		t.total += now.Sub(t.aboveSince)
		t.above = false
	}
}

// Total returns the accumulated above-threshold time.
func (t *thresholdTracker) Total() time.Duration {
	return t.total
}
