package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/zaer/hr-service/internal/cache"
	"github.com/zaer/hr-service/internal/events"
)

type recordingPublisher struct {
	mu        sync.Mutex
	published []events.Event
	attempts  int
	fail      bool
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempts++
	if p.fail {
		return errors.New("channel closed")
	}
	p.published = append(p.published, e)
	return nil
}

func (p *recordingPublisher) Ping() error  { return nil }
func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

type recordingCache struct {
	cache.Noop
	mu      sync.Mutex
	deleted []string
}

func (c *recordingCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, keys...)
	return nil
}

func TestEventRelayForwardsAndInvalidates(t *testing.T) {
	defer goleak.VerifyNone(t)

	dispatcher := events.NewInMemoryDispatcher()
	publisher := &recordingPublisher{}
	c := &recordingCache{}
	relay := NewEventRelay(dispatcher, publisher, c, zap.NewNop(), 4)

	ctx, cancel := context.WithCancel(context.Background())
	done := StartEventRelay(ctx, relay)

	for _, eventType := range events.AllEventTypes {
		require.NoError(t, dispatcher.Publish(context.Background(), events.NewEvent(eventType, "emp-1", "actor", nil)))
	}

	require.Eventually(t, func() bool { return publisher.count() == len(events.AllEventTypes) }, time.Second, 5*time.Millisecond)
	assert.Len(t, c.deleted, len(events.AllEventTypes))
	assert.Equal(t, cache.EmployeeFullKey("emp-1"), c.deleted[0])

	cancel()
	<-done
}

func TestEventRelayWithoutPublisherOnlyInvalidates(t *testing.T) {
	defer goleak.VerifyNone(t)

	dispatcher := events.NewInMemoryDispatcher()
	c := &recordingCache{}
	relay := NewEventRelay(dispatcher, nil, c, zap.NewNop(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := StartEventRelay(ctx, relay)
	require.NoError(t, dispatcher.Publish(context.Background(), events.NewEvent(events.EventEmployeeUpdated, "emp-2", "actor", nil)))
	assert.Equal(t, []string{cache.EmployeeFullKey("emp-2")}, c.deleted)

	cancel()
	<-done
}

func TestEventRelayKeepsRunningAfterPublishFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	dispatcher := events.NewInMemoryDispatcher()
	publisher := &recordingPublisher{fail: true}
	relay := NewEventRelay(dispatcher, publisher, nil, zap.NewNop(), 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := StartEventRelay(ctx, relay)
	require.NoError(t, dispatcher.Publish(context.Background(), events.NewEvent(events.EventTerminationCreated, "emp-3", "actor", nil)))

	require.Eventually(t, func() bool {
		publisher.mu.Lock()
		defer publisher.mu.Unlock()
		return publisher.attempts == 1
	}, time.Second, 5*time.Millisecond)
	publisher.mu.Lock()
	publisher.fail = false
	publisher.mu.Unlock()
	require.NoError(t, dispatcher.Publish(context.Background(), events.NewEvent(events.EventTerminationCreated, "emp-3", "actor", nil)))
	require.Eventually(t, func() bool { return publisher.count() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
