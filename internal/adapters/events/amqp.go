// Package events publishes domain events to a RabbitMQ topic exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const serviceName = "events"

// Config holds the broker settings.
type Config struct {
	URL      string
	Exchange string
}

// Envelope is the message body written for every event.
type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.EventPublisher.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	now      func() time.Time
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Dial connects to the broker and declares the exchange.
func Dial(cfg Config) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declaring exchange %q: %w", cfg.Exchange, err)
	}

	p := newPublisher(ch, cfg.Exchange)
	p.conn = conn

	return p, nil
}

func newPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		now:      time.Now,
	}
}

// Publish sends the event with its type as the routing key.
func (p *Publisher) Publish(ctx context.Context, event ports.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := uuid.NewString()

	body, err := json.Marshal(Envelope{
		ID:         id,
		Type:       event.EventType(),
		OccurredAt: p.now().UTC(),
		Payload:    event.Payload(),
	})
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.EventType(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish(p.exchange, event.EventType(), false, false, amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    id,
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now(),
		Body:         body,
	})
	if err != nil {
		return domain.NewUnavailableError(serviceName, err.Error())
	}

	return nil
}

// Name implements ports.HealthChecker.
func (p *Publisher) Name() string {
	return serviceName
}

// Check implements ports.HealthChecker.
func (p *Publisher) Check(_ context.Context) error {
	if p.conn != nil && p.conn.IsClosed() {
		return domain.NewUnavailableError(serviceName, "connection closed")
	}

	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		return err
	}

	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}
