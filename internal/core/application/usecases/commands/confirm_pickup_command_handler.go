package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ConfirmPickupCommandHandler lets any registered deliverer claim a waiting
// delivery. The first claim wins; later ones fail with errs.ErrInvalidTransition.
// The claimant becomes the deliverer of both the delivery and its order, and the
// order moves to Delivered.
type ConfirmPickupCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewConfirmPickupCommandHandler(uowFactory UoWFactory, clock ports.Clock) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	delivererID, err := h.access.RequireRole(ctx, uow.PartyRepository(), cmd.Caller(), party.Deliverer)
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = d.PickUp(delivererID, now); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	if err = o.MarkDelivered(delivererID); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.DeliveryPickedUp{
		DeliveryID:  d.ID().Uint64(),
		OrderID:     o.ID().Uint64(),
		DelivererID: delivererID.Uint64(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
