package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/zaer/hr-service/internal/events"
)

// publishEvent hands the event to the dispatcher. Delivery failures are logged
// and never fail the write that produced the event.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}
