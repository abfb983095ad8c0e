// Package jobs provides scheduled background tasks for the planner.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// VenueReloadJob re-imports the venue file so that edits to it reach the catalogue
// without a restart. Each successful reload clears the planning board, since its
// assignments refer to the previous catalogue.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(importVenuesHandler, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed reload is logged and the previous catalogue stays in place. A schedule that
// does not parse makes StartAll fail.
package jobs
