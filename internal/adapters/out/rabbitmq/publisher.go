package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"foodorder/internal/core/domain/events"

	amqp "github.com/rabbitmq/amqp091-go"
)

const contentType = "application/json"

var ErrPublishNacked = errors.New("publish NACK from broker")

type Config struct {
	URL      string
	Exchange string
}

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	GetNextPublishSeqNo() uint64
	Close() error
}

// Publisher sends ledger events to a durable topic exchange. The routing key
// is the event name, so consumers bind to patterns like "order.*".
// Every publish waits for the broker's confirm of its own delivery tag;
// confirms left over from an abandoned publish are skipped.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	acks     <-chan amqp.Confirmation
	exchange string

	mu sync.Mutex
}

func Dial(cfg Config) (*Publisher, error) {
	if cfg.Exchange == "" {
		return nil, errors.New("rabbitmq exchange is required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	p := newPublisher(ch, acks, cfg.Exchange)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, acks <-chan amqp.Confirmation, exchange string) *Publisher {
	return &Publisher{ch: ch, acks: acks, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, envelope events.Envelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tag := p.ch.GetNextPublishSeqNo()
	if err := p.ch.PublishWithContext(
		ctx,
		p.exchange,
		envelope.Name,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  contentType,
			MessageId:    envelope.ID.String(),
			Type:         envelope.Name,
			Timestamp:    envelope.OccurredAt,
			Body:         envelope.Payload,
		},
	); err != nil {
		return err
	}

	for {
		select {
		case conf, ok := <-p.acks:
			if !ok {
				return amqp.ErrClosed
			}
			if conf.DeliveryTag < tag {
				continue
			}
			if conf.DeliveryTag > tag {
				return fmt.Errorf("confirm for delivery tag %d arrived while waiting for %d", conf.DeliveryTag, tag)
			}
			if !conf.Ack {
				return ErrPublishNacked
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
