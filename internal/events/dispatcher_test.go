package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []Event
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	created := NewEvent(EventEmployeeCreated, "emp-1", "actor-1", nil)
	require.NoError(t, d.Publish(context.Background(), created))
	require.NoError(t, d.Publish(context.Background(), NewEvent(EventEmployeeUpdated, "emp-1", "actor-1", nil)))

	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)
	assert.NotEmpty(t, got[0].ID)
}

func TestDispatcherJoinsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventTerminationCreated, func(context.Context, Event) error {
		calls++
		return errors.New("broker down")
	})
	d.Subscribe(EventTerminationCreated, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventTerminationCreated, "emp-1", "actor-1", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.Equal(t, 2, calls)
}

func TestDispatcherConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewInMemoryDispatcher()
	var mu sync.Mutex
	count := 0
	d.Subscribe(EventEmployeeUpdated, func(context.Context, Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.Publish(context.Background(), NewEvent(EventEmployeeUpdated, "emp", "actor", nil))
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, count)
}

func TestDispatcherRecoversHandlerPanic(t *testing.T) {
	d := NewInMemoryDispatcher()
	delivered := false
	d.Subscribe(EventEmployeeDeactivated, func(context.Context, Event) error {
		panic("nil map")
	})
	d.Subscribe(EventEmployeeDeactivated, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventEmployeeDeactivated, "emp-1", "actor-1", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee_deactivated handler panicked: nil map")
	assert.True(t, delivered)
}
