// Package jobs runs the background work of the cleaning marketplace.
//
// # Available Jobs
//
// 1. OverdueOpenJobsJob - cron job (default "0 * * * * *", once a minute) that
// notifies about open jobs whose booking already ended
// 2. The reminder scheduler - per-job delayed reminders queued by CreateJob
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueHandler, reminders, cfg.OverdueSweepSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The sweep ignores ErrNoOverdueJobs and logs every other failure
// - A failed cron registration stops whatever was already started
package jobs
