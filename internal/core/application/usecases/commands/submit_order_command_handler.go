package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// SubmitOrderCommandHandler places an order in status Submitted.
//
// The checks run in order and the first failure is returned: the caller is a
// customer, the food exists, the restaurant exists and sells that food, the
// payment equals the current price exactly.
type SubmitOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewSubmitOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (kernel.EntityID, error) {
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

	partyRepo := uow.PartyRepository()
	customerID, err := h.access.RequireRole(ctx, partyRepo, cmd.Caller(), party.Customer)
	if err != nil {
		return kernel.Unassigned, err
	}

	f, err := uow.FoodRepository().Get(ctx, cmd.FoodID())
	if err != nil {
		return kernel.Unassigned, err
	}

	if _, err = partyRepo.Get(ctx, party.Restaurant, cmd.RestaurantID()); err != nil {
		return kernel.Unassigned, err
	}
	if !f.IsOwnedBy(cmd.RestaurantID()) {
		return kernel.Unassigned, errs.NewObjectNotFoundErrorWithCause("food", f.ID(),
			fmt.Errorf("restaurant %s does not sell it", cmd.RestaurantID()))
	}

	if !cmd.Payment().IsEqual(f.Price()) {
		return kernel.Unassigned, errs.NewPaymentMismatchError(f.Price().String(), cmd.Payment().String())
	}

	id, err := uow.SequenceRepository().Next(ctx, kernel.KindOrder)
	if err != nil {
		return kernel.Unassigned, err
	}

	o, err := order.NewOrder(id, f.ID(), f.RestaurantID(), customerID, cmd.Address(), cmd.Phone(), f.Price(), now)
	if err != nil {
		return kernel.Unassigned, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.Unassigned, err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.OrderSubmitted{
		OrderID:      o.ID().Uint64(),
		FoodID:       o.FoodID().Uint64(),
		RestaurantID: o.RestaurantID().Uint64(),
		CustomerID:   o.CustomerID().Uint64(),
		Address:      o.Address(),
		Phone:        o.Phone(),
		Price:        o.Price(),
	}); err != nil {
		return kernel.Unassigned, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Unassigned, err
	}

	return id, nil
}
