package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// RelayEventsCommandHandler moves committed events from the outbox to the
// publisher, oldest first.
//
// Publishing happens outside of any transaction so a slow broker never holds up
// ledger mutations. Events are marked published only after the publisher
// accepted them; a failure stops the run and the remaining events are retried
// by the next one. Delivery is therefore at least once.
type RelayEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
}

func NewRelayEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
) RelayEventsCommandHandler {
	return RelayEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle returns how many events were published. A non-nil error may come with
// a positive count: those events were published and marked before the failure.
func (h RelayEventsCommandHandler) Handle(ctx context.Context, cmd RelayEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pending, err := h.loadPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	published := make([]kernel.UUID, 0, len(pending))
	var publishErr error
	for _, envelope := range pending {
		if publishErr = h.publisher.Publish(ctx, envelope); publishErr != nil {
			publishErr = fmt.Errorf("publish %s %s: %w", envelope.Name, envelope.ID, publishErr)
			break
		}
		published = append(published, envelope.ID)
	}

	if len(published) > 0 {
		if err = h.markPublished(ctx, published); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}

func (h RelayEventsCommandHandler) loadPending(ctx context.Context, limit int) ([]events.Envelope, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OutboxRepository().ListPending(ctx, limit)
}

func (h RelayEventsCommandHandler) markPublished(ctx context.Context, ids []kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OutboxRepository().MarkPublished(ctx, ids, h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
