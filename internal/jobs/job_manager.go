package jobs

import (
	"fmt"
	"log/slog"
)

// Lifecycle is implemented by the reminder scheduler.
type Lifecycle interface {
	Start()
	Stop()
}

// JobManager starts and stops every background worker together.
type JobManager struct {
	overdueOpenJobsJob *OverdueOpenJobsJob
	reminders          Lifecycle
}

func NewJobManager(
	overdueHandler OverdueJobsHandler,
	reminders Lifecycle,
	overdueSweepSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueOpenJobsJob: NewOverdueOpenJobsJob(overdueHandler, overdueSweepSpec, logger),
		reminders:          reminders,
	}
}

// StartAll starts the reminder scheduler, then the cron jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	jm.reminders.Start()

	if err := jm.overdueOpenJobsJob.Start(); err != nil {
		jm.reminders.Stop()
		return fmt.Errorf("failed to start overdue open jobs sweep: %w", err)
	}

	return nil
}

// StopAll stops the cron jobs first so no new work reaches the scheduler.
func (jm *JobManager) StopAll() {
	jm.overdueOpenJobsJob.Stop()
	jm.reminders.Stop()
}
