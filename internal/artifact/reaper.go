package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron"

	"celestial-chart/internal/metrics"
)

// Reaper periodically deletes artifacts older than the retention period.
type Reaper struct {
	store     *Store
	retention time.Duration
	interval  time.Duration
	scheduler *gocron.Scheduler
	metrics   *metrics.Recorder
	logger    *slog.Logger
	now       func() time.Time
}

// NewReaper creates a reaper for store. It does nothing until Start is called.
func NewReaper(store *Store, retention, interval time.Duration, recorder *metrics.Recorder, logger *slog.Logger) *Reaper {
	return &Reaper{
		store:     store,
		retention: retention,
		interval:  interval,
		scheduler: gocron.NewScheduler(time.UTC),
		metrics:   recorder,
		logger:    logger.With("component", "reaper"),
		now:       time.Now,
	}
}

// Start runs a sweep immediately and then every interval.
func (r *Reaper) Start() error {
	if r.interval <= 0 {
		return fmt.Errorf("invalid reap interval %s", r.interval)
	}

	_, err := r.scheduler.Every(r.interval).SingletonMode().Do(func() {
		removed, err := r.Sweep(r.now())
		if err != nil {
			r.logger.Error("sweep failed", "error", err)
			return
		}
		r.logger.Debug("sweep completed", "removed", removed)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reaper: %w", err)
	}

	r.scheduler.StartAsync()
	r.logger.Info("reaper started", "dir", r.store.Dir(), "retention", r.retention, "interval", r.interval)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (r *Reaper) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
	r.logger.Info("reaper stopped")
}

// Sweep deletes every managed file whose modification time is more than the
// retention period before now. Failures on single files are logged and
// skipped; only an unreadable directory fails the sweep.
func (r *Reaper) Sweep(now time.Time) (int, error) {
	entries, err := os.ReadDir(r.store.Dir())
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", r.store.Dir(), err)
	}

	cutoff := now.Add(-r.retention)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !isManaged(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				r.logger.Warn("failed to stat file", "name", entry.Name(), "error", err)
			}
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(r.store.Dir(), entry.Name())
		if err := os.Remove(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				r.logger.Warn("failed to delete expired file", "name", entry.Name(), "error", err)
			}
			continue
		}
		removed++
		r.logger.Debug("deleted expired file", "name", entry.Name(), "modified", info.ModTime())
	}

	r.metrics.FilesReaped(removed)
	return removed, nil
}
