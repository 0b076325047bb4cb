// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request-driven flows cannot cover.
//
// # Available Jobs
//
// 1. AgentLivenessJob - Runs every minute to flip AVAILABLE agents that
// stopped reporting activity to OFFLINE.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(markStaleHandler, 15*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed job
// start aborts application startup.
package jobs
