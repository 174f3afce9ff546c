// Package jobs provides scheduled background tasks for the field-service
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. AppointmentReminderJob - Periodically scans appointed orders and sends
// a reminder notification to the customer, once per confirmed appointment.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reminders are fire-and-forget like every other notification: a failed
// store scan is logged and retried on the next tick, it never affects the
// order book.
package jobs
