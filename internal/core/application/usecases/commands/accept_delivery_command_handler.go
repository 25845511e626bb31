package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// AcceptDeliveryCommandHandler closes an order on behalf of the customer who
// placed it. Only a Delivered order can be accepted.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewAcceptDeliveryCommandHandler(uowFactory UoWFactory, clock ports.Clock) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	customerID, err := h.access.RequireRole(ctx, uow.PartyRepository(), cmd.Caller(), party.Customer)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.access.RequireOwner("order", o.ID(), o.CustomerID(), customerID); err != nil {
		return err
	}

	if err = o.Accept(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.OrderAccepted{
		OrderID:    o.ID().Uint64(),
		CustomerID: o.CustomerID().Uint64(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
