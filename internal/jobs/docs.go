// Package jobs provides scheduled background tasks for the freight delivery
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. StalledDeliveryJob - Runs every minute to log active deliveries whose
// last status change is older than a configured threshold.
//
// The delivery lifecycle has no automatic or scheduled transitions; every
// status change is caller-initiated. Jobs here only observe and report.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(stalledHandler, stalledThreshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
