package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
)

const (
	headerEventName  = "event-name"
	headerOccurredAt = "occurred-at"
)

type Config struct {
	Brokers []string
	Topic   string
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher appends ledger events to a single topic keyed by event id. The
// event name travels in a header.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}), nil
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, envelope events.Envelope) error {
	msg := kafka.Message{
		Key:   []byte(envelope.ID.String()),
		Value: envelope.Payload,
		Time:  envelope.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventName, Value: []byte(envelope.Name)},
			{Key: headerOccurredAt, Value: []byte(envelope.OccurredAt.Format(time.RFC3339Nano))},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s to kafka: %w", envelope.Name, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
