package broker

import (
	"encoding/json"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaer/hr-service/internal/events"
)

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "hr.employee_created", RoutingKey("hr", events.EventEmployeeCreated))
	assert.Equal(t, "termination_created", RoutingKey("", events.EventTerminationCreated))
}

func TestMessage(t *testing.T) {
	event := events.NewEvent(events.EventEmployeeUpdated, "emp-1", "actor-1", events.EmployeePayload{BadgeNumber: 7})
	msg, err := Message(event)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, event.ID, msg.MessageId)
	assert.Equal(t, "employee_updated", msg.Type)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "emp-1", decoded["employee_id"])
	assert.Equal(t, float64(7), decoded["payload"].(map[string]any)["badge_number"])
}
