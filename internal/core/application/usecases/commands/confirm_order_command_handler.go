package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ConfirmOrderCommandHandler moves an order from Submitted to Confirmed and fixes
// its eta to the food's estimate at this moment.
//
// Example:
//
//	cmd, _ := NewConfirmOrderCommand(restaurant, orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrNotOwner):
//	    // another restaurant's order
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // already confirmed
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewConfirmOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	f, err := requireFoodOwner(ctx, uow, h.access, cmd.Caller(), o)
	if err != nil {
		return err
	}

	if err = o.Confirm(f.Eta()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.OrderConfirmed{
		OrderID:      o.ID().Uint64(),
		RestaurantID: o.RestaurantID().Uint64(),
		EtaMillis:    o.Eta().Milliseconds(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// requireFoodOwner checks that caller is the restaurant selling the ordered food
// and returns that food.
func requireFoodOwner(
	ctx context.Context,
	uow UoW,
	access services.AccessController,
	caller kernel.Account,
	o *order.Order,
) (*food.Food, error) {
	restaurantID, err := access.RequireRole(ctx, uow.PartyRepository(), caller, party.Restaurant)
	if err != nil {
		return nil, err
	}

	f, err := uow.FoodRepository().Get(ctx, o.FoodID())
	if err != nil {
		return nil, err
	}

	if err = access.RequireOwner("order", o.ID(), f.RestaurantID(), restaurantID); err != nil {
		return nil, err
	}
	return f, nil
}
