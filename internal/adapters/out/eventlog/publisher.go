// Package eventlog publishes ledger events as structured log records. It is
// the publisher used when no broker is configured.
package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"

	"foodorder/internal/core/domain/events"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event_log")}
}

func (p *Publisher) Publish(ctx context.Context, envelope events.Envelope) error {
	p.logger.InfoContext(ctx, "Ledger event",
		"event_id", envelope.ID.String(),
		"event", envelope.Name,
		"occurred_at", envelope.OccurredAt,
		"payload", json.RawMessage(envelope.Payload),
	)
	return nil
}
