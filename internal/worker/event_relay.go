package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/zaer/hr-service/internal/broker"
	"github.com/zaer/hr-service/internal/cache"
	"github.com/zaer/hr-service/internal/events"
)

const defaultRelayBuffer = 256

// EventRelay invalidates cached employee records as events are published and
// forwards the events to the broker from a background loop.
type EventRelay struct {
	dispatcher events.Dispatcher
	publisher  broker.Publisher
	cache      cache.Cache
	logger     *zap.Logger
	queue      chan events.Event
}

// NewEventRelay builds a relay. A nil publisher disables forwarding.
func NewEventRelay(dispatcher events.Dispatcher, publisher broker.Publisher, c cache.Cache, logger *zap.Logger, buffer int) *EventRelay {
	if buffer <= 0 {
		buffer = defaultRelayBuffer
	}
	if c == nil {
		c = cache.Noop{}
	}
	return &EventRelay{
		dispatcher: dispatcher,
		publisher:  publisher,
		cache:      c,
		logger:     logger,
		queue:      make(chan events.Event, buffer),
	}
}

// RegisterHandlers subscribes the relay to every HR event.
func (r *EventRelay) RegisterHandlers() {
	if r.dispatcher == nil {
		return
	}
	for _, eventType := range events.AllEventTypes {
		r.dispatcher.Subscribe(eventType, r.handle)
	}
}

func (r *EventRelay) handle(ctx context.Context, event events.Event) error {
	if event.EmployeeID != "" {
		if err := r.cache.Delete(ctx, cache.EmployeeFullKey(event.EmployeeID)); err != nil {
			r.logger.Warn("cache invalidation failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err))
		}
	}
	if r.publisher == nil {
		return nil
	}
	select {
	case r.queue <- event:
	default:
		r.logger.Warn("event relay queue full, dropping event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)))
	}
	return nil
}

// Run forwards queued events until ctx is cancelled.
func (r *EventRelay) Run(ctx context.Context) error {
	if r.publisher == nil {
		<-ctx.Done()
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-r.queue:
			if err := r.publisher.Publish(ctx, event); err != nil {
				r.logger.Error("publish event failed",
					zap.String("event_id", event.ID),
					zap.String("event_type", string(event.Type)),
					zap.Error(err))
				continue
			}
			r.logger.Debug("event published",
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)))
		}
	}
}

// StartEventRelay registers the relay handlers and runs the forwarding loop in
// the background. The returned channel is closed when the loop exits.
func StartEventRelay(ctx context.Context, relay *EventRelay) <-chan struct{} {
	done := make(chan struct{})
	if relay == nil {
		close(done)
		return done
	}
	relay.RegisterHandlers()
	go func() {
		defer close(done)
		_ = relay.Run(ctx)
	}()
	return done
}
