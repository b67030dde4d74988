// Package monitor implements the CPU sampling loop that feeds the
// telemetry service.
package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/loadwatch/internal/client/api"
	"github.com/dmitrijs2005/loadwatch/internal/client/config"
	"github.com/dmitrijs2005/loadwatch/internal/logging"
)

// State is the monitor lifecycle position.
type State int

const (
	StateIdle State = iota
	StateAuthenticated
	StateRunActive
	StateTerminating
	StateEnded
)

// Monitor samples CPU usage on a fixed interval, posts each reading to
// the server and keeps threshold accounting. Termination runs at most
// once, whether triggered by context cancellation or a panic in the
// sampling loop.
type Monitor struct {
	cfg    *config.Config
	api    api.Client
	logger logging.Logger

	tracker *thresholdTracker
	out     io.Writer
	sample  func(ctx context.Context) (float64, error)

	mu         sync.Mutex
	state      State
	terminated bool

	runID   int64
	started time.Time
}

func New(cfg *config.Config, client api.Client, logger logging.Logger) *Monitor {
	return &Monitor{
		cfg:     cfg,
		api:     client,
		logger:  logger.With("module", "monitor"),
		tracker: newThresholdTracker(cfg.Threshold),
		out:     os.Stdout,
		sample:  sampleCPU,
		state:   StateIdle,
	}
}

// State returns the current lifecycle state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Run drives the full lifecycle. Authentication or run-creation failures
// are fatal and returned to the caller; once sampling has started the
// method only returns after the termination sequence has run.
func (m *Monitor) Run(ctx context.Context) error {
	fullName, err := m.api.Login(ctx, m.cfg.Username, m.cfg.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	m.setState(StateAuthenticated)
	m.logger.Info(ctx, "Authenticated", "full_name", fullName)

	run, err := m.api.CreateRun(ctx, m.cfg.RunName)
	if err != nil {
		return fmt.Errorf("create run failed: %w", err)
	}
	m.runID = run.ID
	m.started = time.Now()
	m.setState(StateRunActive)
	m.logger.Info(ctx, "Test run started", "run_id", run.ID, "name", run.Name)

	m.loop(ctx)
	return nil
}

// loop samples until ctx is cancelled. The deferred termination also
// fires when a tick panics, so the report and end-run call still happen.
func (m *Monitor) loop(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error(ctx, "panic in sampling loop", "panic", fmt.Sprint(r))
		}
		m.beginTermination(context.Background())
	}()

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		m.tick(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *Monitor) tick(ctx context.Context) {
	usage, err := m.sample(ctx)
	if err != nil {
		m.logger.Error(ctx, "cpu sampling failed", "error", err.Error())
		return
	}

	m.logger.Info(ctx, "Current CPU usage", "usage_percent", usage)

	if m.tracker.Observe(usage, time.Now()) {
		m.logger.Warn(ctx, "CPU usage above threshold",
			"usage_percent", usage, "threshold", m.cfg.Threshold)
	}

	if err := m.api.RecordSample(ctx, m.runID, usage); err != nil {
		m.logger.Warn(ctx, "failed to post sample", "error", err.Error())
	}
}

// beginTermination runs the shutdown sequence at most once: flush
// threshold accounting, end the run on the server and print the report.
func (m *Monitor) beginTermination(ctx context.Context) {
	m.mu.Lock()
	if m.terminated {
		m.mu.Unlock()
		return
	}
	m.terminated = true
	m.state = StateTerminating
	m.mu.Unlock()

	now := time.Now()
	m.tracker.Flush(now)
	total := now.Sub(m.started)

	if err := m.api.EndRun(ctx, m.runID); err != nil {
		m.logger.Error(ctx, "failed to end test run", "error", err.Error())
	}

	if err := writeReport(m.out, total, m.tracker.Total()); err != nil {
		m.logger.Error(ctx, "failed to write report", "error", err.Error())
	}

	m.setState(StateEnded)
}
