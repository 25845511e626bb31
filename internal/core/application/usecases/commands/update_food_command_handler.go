package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// UpdateFoodCommandHandler lets a restaurant edit one of its own catalog entries.
// The checks run in order: the caller is a restaurant, the entry exists, the
// caller owns it.
type UpdateFoodCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewUpdateFoodCommandHandler(uowFactory CatalogUoWFactory, clock ports.Clock) UpdateFoodCommandHandler {
	return UpdateFoodCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

func (h UpdateFoodCommandHandler) Handle(ctx context.Context, cmd UpdateFoodCommand) error {
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

	restaurantID, err := h.access.RequireRole(ctx, uow.PartyRepository(), cmd.Caller(), party.Restaurant)
	if err != nil {
		return err
	}

	foodRepo := uow.FoodRepository()
	f, err := foodRepo.Get(ctx, cmd.FoodID())
	if err != nil {
		return err
	}

	if err = h.access.RequireOwner("food", f.ID(), f.RestaurantID(), restaurantID); err != nil {
		return err
	}

	if err = f.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Eta(), now); err != nil {
		return err
	}

	if err = foodRepo.Update(ctx, f); err != nil {
		return err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.FoodUpdated{
		FoodID:       f.ID().Uint64(),
		RestaurantID: f.RestaurantID().Uint64(),
		Name:         f.Name(),
		Price:        f.Price(),
		EtaMillis:    f.Eta().Milliseconds(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
