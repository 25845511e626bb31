package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/ports"
)

// BootstrapManagerCommandHandler stores the configured manager if the ledger has
// none yet. Once a manager exists it is only replaced through ChangeManagerCommand,
// so restarting with a different configuration does not take the role away.
type BootstrapManagerCommandHandler struct {
	uowFactory RegistryUoWFactory
	clock      ports.Clock
}

func NewBootstrapManagerCommandHandler(uowFactory RegistryUoWFactory, clock ports.Clock) BootstrapManagerCommandHandler {
	return BootstrapManagerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle reports whether the manager was installed by this call.
func (h BootstrapManagerCommandHandler) Handle(ctx context.Context, cmd BootstrapManagerCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}
	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settings := uow.SettingsRepository()
	current, err := settings.Manager(ctx)
	if err != nil {
		return false, err
	}
	if !current.IsZero() {
		return false, nil
	}

	if err = settings.SetManager(ctx, cmd.Manager()); err != nil {
		return false, err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.ManagerChanged{
		Current: cmd.Manager().String(),
	}); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
