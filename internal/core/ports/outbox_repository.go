package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
)

// OutboxRepository stores events in the same transaction as the mutation that
// produced them. Pending events are read back in the order they were added.
type OutboxRepository interface {
	Add(ctx context.Context, envelope events.Envelope) error
	ListPending(ctx context.Context, limit int) ([]events.Envelope, error)
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}
