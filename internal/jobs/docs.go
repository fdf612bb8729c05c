// Package jobs provides scheduled background tasks for the warehouse service.
//
// Jobs run on github.com/robfig/cron/v3 with six-field expressions (seconds
// first).
//
// # Available Jobs
//
// LocationPruneJob deletes cities no warehouse references and countries
// with no cities. Only rows created before now minus the grace period are
// considered, which keeps locations that a concurrent warehouse save has
// just produced.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(warehouseService, jobs.PruneSettings{
//		Schedule:    "0 0 3 * * *",
//		GracePeriod: 24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and the next scheduled pass tries again.
package jobs
