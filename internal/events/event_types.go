package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated     EventType = "employee_created"
	EventEmployeeUpdated     EventType = "employee_updated"
	EventEmployeeDeactivated EventType = "employee_deactivated"
	EventTerminationCreated  EventType = "termination_created"
	EventTerminationDeleted  EventType = "termination_deleted"
)

// AllEventTypes lists every type the relay forwards.
var AllEventTypes = []EventType{
	EventEmployeeCreated,
	EventEmployeeUpdated,
	EventEmployeeDeactivated,
	EventTerminationCreated,
	EventTerminationDeleted,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	EmployeeID string    `json:"employee_id"`
	ActorID    string    `json:"actor_id"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, employeeID, actorID string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employeeID,
		ActorID:    actorID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}

// EmployeePayload describes an employee write.
type EmployeePayload struct {
	BadgeNumber int64    `json:"badge_number"`
	FullName    string   `json:"full_name"`
	SectionID   string   `json:"section_uid"`
	Changed     []string `json:"changed,omitempty"`
}

// TerminationPayload describes a recorded termination.
type TerminationPayload struct {
	TerminationID   string `json:"termination_uid"`
	HireDate        string `json:"hire_date"`
	TerminationDate string `json:"termination_date"`
}
