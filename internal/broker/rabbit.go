package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/zaer/hr-service/internal/events"
)

// Publisher forwards domain events to an external broker.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
	Ping() error
	Close() error
}

// RabbitPublisher publishes events as persistent JSON messages on a topic exchange.
type RabbitPublisher struct {
	conn          *amqp.Connection
	channel       *amqp.Channel
	exchange      string
	routingPrefix string
}

// NewRabbitPublisher dials the broker and declares the exchange.
func NewRabbitPublisher(amqpURL, exchange, routingPrefix string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &RabbitPublisher{
		conn:          conn,
		channel:       ch,
		exchange:      exchange,
		routingPrefix: routingPrefix,
	}, nil
}

// RoutingKey returns the key an event type is published under.
func RoutingKey(prefix string, eventType events.EventType) string {
	if prefix == "" {
		return string(eventType)
	}
	return prefix + "." + string(eventType)
}

// Message builds the AMQP publishing for an event.
func Message(event events.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    event.ID,
		Type:         string(event.Type),
		Body:         body,
		Timestamp:    event.Timestamp,
		DeliveryMode: amqp.Persistent,
	}, nil
}

// Publish sends the event to the exchange.
func (r *RabbitPublisher) Publish(ctx context.Context, event events.Event) error {
	msg, err := Message(event)
	if err != nil {
		return err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return r.channel.PublishWithContext(ctx,
		r.exchange,
		RoutingKey(r.routingPrefix, event.Type),
		false, false,
		msg,
	)
}

// Ping reports whether the connection is still open.
func (r *RabbitPublisher) Ping() error {
	if r.conn.IsClosed() {
		return amqp.ErrClosed
	}
	return nil
}

// Close releases the channel and connection.
func (r *RabbitPublisher) Close() error {
	if err := r.channel.Close(); err != nil {
		r.conn.Close()
		return err
	}
	return r.conn.Close()
}
