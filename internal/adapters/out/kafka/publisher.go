// Package kafka delivers domain events to a Kafka topic after commits.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tms/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
)

// messageWriter abstracts the Kafka writer so publishing can be tested
// without a broker.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// envelope is the wire format of a published domain event. The event name
// travels alongside the payload so consumers can route without decoding it.
type envelope struct {
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// Publisher implements ports.EventPublisher on top of a Kafka writer.
// Publishing is best-effort: a broker failure is logged, never returned,
// so a committed business operation cannot be failed by the broker.
type Publisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to the given brokers and topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		topic:  topic,
		logger: logger,
	}
}

// newPublisherWithWriter wires a custom writer, used by tests.
func newPublisherWithWriter(writer messageWriter, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

// Publish emits one message per event, keyed by tenant so all events of a
// tenant land on the same partition in order.
func (p *Publisher) Publish(ctx context.Context, evts ...events.DomainEvent) {
	if len(evts) == 0 {
		return
	}

	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			p.logger.Error("marshal domain event",
				slog.String("event", evt.Name()),
				slog.Any("error", err))
			continue
		}

		value, err := json.Marshal(envelope{
			Name:       evt.Name(),
			OccurredAt: time.Now().UTC(),
			Payload:    payload,
		})
		if err != nil {
			p.logger.Error("marshal event envelope",
				slog.String("event", evt.Name()),
				slog.Any("error", err))
			continue
		}

		messages = append(messages, kafka.Message{
			Topic: p.topic,
			Key:   tenantKey(payload),
			Value: value,
		})
	}
	if len(messages) == 0 {
		return
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error("publish domain events",
			slog.Int("count", len(messages)),
			slog.Any("error", err))
	}
}

// tenantKey extracts the tenant identifier every event payload carries.
// Keying by tenant keeps a tenant's events ordered on one partition.
func tenantKey(payload []byte) []byte {
	var key struct {
		TenantID string `json:"tenantId"`
	}
	if err := json.Unmarshal(payload, &key); err != nil {
		return nil
	}

	return []byte(key.TenantID)
}
