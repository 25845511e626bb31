package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// DispatchOrderCommandHandler moves a confirmed order to Dispatched and opens
// the delivery that deliverers can claim. Authorization is the same as for
// confirmation.
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewDispatchOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

// Handle returns the identifier of the new delivery.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) (kernel.EntityID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Unassigned, err
	}
	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Unassigned, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.Unassigned, err
	}

	if _, err = requireFoodOwner(ctx, uow, h.access, cmd.Caller(), o); err != nil {
		return kernel.Unassigned, err
	}

	if err = o.Dispatch(); err != nil {
		return kernel.Unassigned, err
	}

	deliveryID, err := uow.SequenceRepository().Next(ctx, kernel.KindDelivery)
	if err != nil {
		return kernel.Unassigned, err
	}

	d, err := delivery.NewDelivery(deliveryID, o.ID(), o.RestaurantID(), o.CustomerID(), o.Address(), now)
	if err != nil {
		return kernel.Unassigned, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.Unassigned, err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return kernel.Unassigned, err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.OrderDispatched{
		OrderID:      o.ID().Uint64(),
		DeliveryID:   d.ID().Uint64(),
		RestaurantID: o.RestaurantID().Uint64(),
		CustomerID:   o.CustomerID().Uint64(),
		Address:      d.Address(),
	}); err != nil {
		return kernel.Unassigned, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Unassigned, err
	}

	return deliveryID, nil
}
