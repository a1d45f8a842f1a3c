// Package jobs provides scheduled background tasks for the quoting service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionEvictionJob - drops visitor sessions that have been idle for longer than the session TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessionStore, "@every 1m", 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format (with seconds) or descriptors such as "@every 1m".
// Sessions that are in the middle of a request are skipped and picked up by a later run.
package jobs
