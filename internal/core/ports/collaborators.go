package ports

import (
	"context"
	"io"
	"time"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
)

// MediaStore keeps uploaded evidence photos.
type MediaStore interface {
	// Save writes the content under name and returns a stable reference to it.
	Save(ctx context.Context, name string, content io.Reader) (string, error)

	// Delete removes the file behind a reference returned by Save. A missing
	// file is not an error.
	Delete(ctx context.Context, ref string) error
}

// BookingSource supplies guest booking windows for a property.
type BookingSource interface {
	UpcomingBookings(ctx context.Context, propertyID kernel.UUID) ([]job.BookingWindow, error)
}

// NotificationKind tells a Notifier why a job is being brought up.
type NotificationKind string

const (
	// JobReminder fires shortly before the booking of a job ends.
	JobReminder NotificationKind = "job_reminder"

	// JobOverdue is sent for open jobs whose booking already ended.
	JobOverdue NotificationKind = "job_overdue"
)

// Notifier delivers job notifications.
type Notifier interface {
	NotifyJob(ctx context.Context, kind NotificationKind, jobID kernel.UUID) error
}

// Task is a unit of deferred work. Its error is logged and otherwise discarded.
type Task func(ctx context.Context) error

// ReminderScheduler runs tasks after a delay. Non-positive delays run as soon as possible.
type ReminderScheduler interface {
	Schedule(delay time.Duration, task Task)
}

// PasswordHasher derives and checks credential hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash string, password string) error
}
