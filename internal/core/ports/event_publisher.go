package ports

import (
	"context"

	"foodorder/internal/core/domain/events"
)

// EventPublisher delivers committed events to observers outside the ledger.
type EventPublisher interface {
	Publish(ctx context.Context, envelope events.Envelope) error
}
