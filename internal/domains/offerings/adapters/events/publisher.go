// Package events publishes offering integration events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/domains/offerings/ports"
)

// QueueOfferingCreated is the durable queue offering.created events land on.
const QueueOfferingCreated = "oferta.criada"

// offeringCreatedEvent is the wire payload for a freshly created offering.
type offeringCreatedEvent struct {
	ID          string    `json:"id"`
	CarrierID   string    `json:"empresaId"`
	RouteID     string    `json:"rotaId"`
	ScheduleID  string    `json:"horarioId"`
	VehicleID   string    `json:"veiculoId"`
	TicketPrice float64   `json:"precoPassagem"`
	CreatedAt   time.Time `json:"criadoEm"`
}

// Publisher pushes offering events onto a RabbitMQ queue. The connection is
// long-lived; a fresh channel is opened per publish so a broker-side channel
// error does not poison later publishes.
type Publisher struct {
	conn   *amqp.Connection
	logger *slog.Logger
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// NewPublisher dials the broker and declares the durable queue.
func NewPublisher(url string, opts ...Option) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	p := &Publisher{conn: conn, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()
	if _, err := ch.QueueDeclare(QueueOfferingCreated, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare %q: %w", QueueOfferingCreated, err)
	}
	return p, nil
}

// OfferingCreated publishes the event as a persistent JSON message on the
// default exchange.
func (p *Publisher) OfferingCreated(ctx context.Context, offering *domain.Offering) error {
	body, err := json.Marshal(offeringCreatedEvent{
		ID:          offering.ID,
		CarrierID:   offering.CarrierID,
		RouteID:     offering.RouteID,
		ScheduleID:  offering.ScheduleID,
		VehicleID:   offering.VehicleID,
		TicketPrice: offering.TicketPrice,
		CreatedAt:   offering.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal offering event: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	err = ch.PublishWithContext(ctx, "", QueueOfferingCreated, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.LogAttrs(ctx, slog.LevelError, "failed to publish offering event",
			slog.String("queue", QueueOfferingCreated),
			slog.String("offering_id", offering.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

// Close releases the broker connection.
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

var _ ports.EventPublisher = (*Publisher)(nil)
