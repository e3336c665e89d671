// Package scheduler runs delayed tasks inside the process.
//
// ReminderScheduler keeps pending tasks in a min-heap ordered by fire time and
// runs them one at a time on a single worker goroutine. Nothing is persisted:
// tasks pending at Stop or at process exit are lost.
//
//	s := scheduler.NewReminderScheduler(logger)
//	s.Start()
//	defer s.Stop()
//
//	s.Schedule(time.Until(end.Add(-time.Hour)), func(ctx context.Context) error {
//		return notifier.NotifyJob(ctx, ports.JobReminder, jobID)
//	})
//
// Task errors and panics are logged and never reach the caller of Schedule.
package scheduler
