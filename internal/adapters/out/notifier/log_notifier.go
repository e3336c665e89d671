// Package notifier delivers job notifications. Only a logging sink exists.
package notifier

import (
	"context"
	"log/slog"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/ports"
)

// LogNotifier writes every notification to the log and never fails.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) NotifyJob(ctx context.Context, kind ports.NotificationKind, jobID kernel.UUID) error {
	n.logger.InfoContext(ctx, "job notification",
		"kind", string(kind),
		"job_id", jobID.String(),
	)
	return nil
}
