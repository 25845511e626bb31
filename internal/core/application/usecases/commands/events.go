package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// record stores e in the outbox of the current transaction. It becomes visible to
// the relay only if the transaction commits.
func record(ctx context.Context, outbox ports.OutboxRepository, at time.Time, e events.Event) error {
	envelope, err := events.NewEnvelope(e, at)
	if err != nil {
		return err
	}
	return outbox.Add(ctx, envelope)
}
