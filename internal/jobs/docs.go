// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob publishes the order events written to the outbox table by
// each committed unit of work. Messages stay pending until the broker accepts
// them, so a broker outage delays events but never loses them.
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxRelaySchedule, 100, logger)
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions with a leading seconds field.
// Overlapping runs are skipped rather than queued.
package jobs
