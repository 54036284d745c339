package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zaer/hr-service/internal/events"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

var testActor = uuid.NewString()

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// requireDomainError asserts err is a DomainError with the given status and message.
func requireDomainError(t *testing.T, err error, status int, message string) *apperrors.DomainError {
	t.Helper()
	require.Error(t, err)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %T: %v", err, err)
	require.Equal(t, status, de.HTTPStatus)
	if message != "" {
		require.Equal(t, message, de.Message)
	}
	return de
}

func requireNotFound(t *testing.T, err error, resource string) {
	t.Helper()
	requireDomainError(t, err, http.StatusNotFound, resource+" not found.")
}

func validEmployeeInput() EmployeeInput {
	return EmployeeInput{
		FirstName:              "  Abebe ",
		LastName:               "Kebede",
		GrandfatherName:        "Tessema",
		Gender:                 "M",
		BirthDate:              date(1990, time.March, 4),
		BirthPlace:             "Addis Ababa",
		OriginOfBirth:          "Shewa",
		MotherFirstName:        "Almaz",
		MotherLastName:         "Bekele",
		MotherGrandfatherName:  "Wolde",
		CurrentSalary:          decimal.RequireFromString("8500.00"),
		CurrentHireDate:        date(2015, time.January, 10),
		DesignationID:          uuid.NewString(),
		SectionID:              uuid.NewString(),
		NationalityID:          uuid.NewString(),
		CountryID:              uuid.NewString(),
		EducationalLevelID:     uuid.NewString(),
		ApprenticeshipFromDate: date(2014, time.July, 1),
		ApprenticeshipToDate:   date(2014, time.December, 31),
	}
}

// memoryCache is a Cache keeping JSON encoded values in a map.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	hits    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// eventRecorder subscribes to every event type and keeps what it receives.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func newEventRecorder(d events.Dispatcher) *eventRecorder {
	r := &eventRecorder{}
	for _, eventType := range events.AllEventTypes {
		d.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, e)
			return nil
		})
	}
	return r
}

func (r *eventRecorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		types = append(types, e.Type)
	}
	return types
}

func (r *eventRecorder) last() events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}
