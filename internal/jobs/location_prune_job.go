package jobs

import (
	"context"
	"log/slog"
	"time"

	"wms/internal/core/application/services"

	"github.com/robfig/cron/v3"
)

// LocationPruner removes reference locations nothing points to.
type LocationPruner interface {
	PruneUnusedLocations(ctx context.Context, olderThan time.Time) (services.PruneResult, error)
}

// LocationPruneJob periodically deletes cities without warehouses and
// countries without cities. Rows younger than the grace period are kept so
// a warehouse save that has just created its city cannot lose it.
type LocationPruneJob struct {
	pruner   LocationPruner
	schedule string
	grace    time.Duration
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

// NewLocationPruneJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewLocationPruneJob(
	pruner LocationPruner,
	schedule string,
	grace time.Duration,
	logger *slog.Logger,
) *LocationPruneJob {
	return &LocationPruneJob{
		pruner:   pruner,
		schedule: schedule,
		grace:    grace,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "location_prune_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *LocationPruneJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Location prune job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Location prune job started",
		"schedule", j.schedule, "grace", j.grace.String())
	return nil
}

// RunOnce performs a single pruning pass.
func (j *LocationPruneJob) RunOnce(ctx context.Context) error {
	cutoff := j.now().Add(-j.grace)

	result, err := j.pruner.PruneUnusedLocations(ctx, cutoff)
	if err != nil {
		return err
	}

	if result.Cities > 0 || result.Countries > 0 {
		j.logger.InfoContext(ctx, "Unused locations pruned",
			"cities", result.Cities, "countries", result.Countries, "cutoff", cutoff)
	}
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *LocationPruneJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Location prune job stopped")
}
