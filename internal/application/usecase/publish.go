package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/biglittle/lending/internal/domain/event"
	"github.com/biglittle/lending/internal/domain/port"
)

const publishTimeout = 5 * time.Second

// publishBestEffort dispatches notifications after a confirmed write without
// blocking the caller's success path. Failures are logged, never surfaced.
func publishBestEffort(ctx context.Context, pub port.EventPublisher, logger *slog.Logger, evts []event.DomainEvent) {
	if len(evts) == 0 {
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		pubCtx, cancel := context.WithTimeout(detached, publishTimeout)
		defer cancel()

		if err := pub.Publish(pubCtx, evts...); err != nil {
			logger.Warn("event publish failed",
				"error", err,
				"event_count", len(evts),
			)
		}
	}()
}
