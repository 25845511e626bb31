package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ChangeManagerCommandHandler lets the current manager appoint a successor.
// Handing the role to the current manager again is accepted and records an event.
type ChangeManagerCommandHandler struct {
	uowFactory RegistryUoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewChangeManagerCommandHandler(uowFactory RegistryUoWFactory, clock ports.Clock) ChangeManagerCommandHandler {
	return ChangeManagerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

func (h ChangeManagerCommandHandler) Handle(ctx context.Context, cmd ChangeManagerCommand) error {
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

	settings := uow.SettingsRepository()
	current, err := settings.Manager(ctx)
	if err != nil {
		return err
	}

	if err = h.access.RequireManager(cmd.Caller(), current); err != nil {
		return err
	}

	if err = settings.SetManager(ctx, cmd.NewManager()); err != nil {
		return err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.ManagerChanged{
		Previous: current.String(),
		Current:  cmd.NewManager().String(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
