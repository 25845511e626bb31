package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// AddFoodCommandHandler stores a catalog entry owned by the calling restaurant.
type AddFoodCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewAddFoodCommandHandler(uowFactory CatalogUoWFactory, clock ports.Clock) AddFoodCommandHandler {
	return AddFoodCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

// Handle returns the identifier of the new entry, or errs.ErrUnauthorized when
// the caller is not a registered restaurant.
func (h AddFoodCommandHandler) Handle(ctx context.Context, cmd AddFoodCommand) (kernel.EntityID, error) {
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

	restaurantID, err := h.access.RequireRole(ctx, uow.PartyRepository(), cmd.Caller(), party.Restaurant)
	if err != nil {
		return kernel.Unassigned, err
	}

	id, err := uow.SequenceRepository().Next(ctx, kernel.KindFood)
	if err != nil {
		return kernel.Unassigned, err
	}

	f, err := food.NewFood(id, restaurantID, cmd.Name(), cmd.Description(), cmd.Price(), cmd.Eta(), now)
	if err != nil {
		return kernel.Unassigned, err
	}

	if err = uow.FoodRepository().Add(ctx, f); err != nil {
		return kernel.Unassigned, err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.FoodAdded{
		FoodID:       f.ID().Uint64(),
		RestaurantID: f.RestaurantID().Uint64(),
		Name:         f.Name(),
		Price:        f.Price(),
		EtaMillis:    f.Eta().Milliseconds(),
	}); err != nil {
		return kernel.Unassigned, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Unassigned, err
	}

	return id, nil
}
