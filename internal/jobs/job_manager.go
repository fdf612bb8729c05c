package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	locationPruneJob *LocationPruneJob
}

// PruneSettings configures the location prune job.
type PruneSettings struct {
	Schedule    string
	GracePeriod time.Duration
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(pruner LocationPruner, prune PruneSettings, logger *slog.Logger) *JobManager {
	return &JobManager{
		locationPruneJob: NewLocationPruneJob(pruner, prune.Schedule, prune.GracePeriod, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.locationPruneJob.Start(); err != nil {
		return fmt.Errorf("failed to start location prune job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.locationPruneJob.Stop()
}
