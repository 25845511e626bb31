package commands

import (
	"context"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// RegisterPartyCommandHandler adds an account to a role whitelist and allocates
// its identifier from the role's own sequence.
//
// Example:
//
//	handler := NewRegisterPartyCommandHandler(uowFactory, clock)
//	cmd, _ := NewRegisterPartyCommand(alice, party.Customer, alice, "Alice", "Elm St 5", "555-0100")
//	customerID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAlreadyRegistered) {
//	    // alice is already a customer
//	}
type RegisterPartyCommandHandler struct {
	uowFactory RegistryUoWFactory
	clock      ports.Clock
	access     services.AccessController
}

func NewRegisterPartyCommandHandler(uowFactory RegistryUoWFactory, clock ports.Clock) RegisterPartyCommandHandler {
	return RegisterPartyCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		access:     services.NewAccessController(),
	}
}

// Handle returns the new party's identifier. Customers may only register their
// own account; any other role requires the caller to be the manager.
func (h RegisterPartyCommandHandler) Handle(ctx context.Context, cmd RegisterPartyCommand) (kernel.EntityID, error) {
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

	if err := h.authorize(ctx, uow, cmd); err != nil {
		return kernel.Unassigned, err
	}

	partyRepo := uow.PartyRepository()
	registered, err := partyRepo.IsMember(ctx, cmd.Role(), cmd.Account())
	if err != nil {
		return kernel.Unassigned, err
	}
	if registered {
		return kernel.Unassigned, errs.NewAlreadyRegisteredError(cmd.Role().String(), cmd.Account().String())
	}

	id, err := uow.SequenceRepository().Next(ctx, cmd.Role().Kind())
	if err != nil {
		return kernel.Unassigned, err
	}

	p, err := party.NewParty(id, cmd.Role(), cmd.Account(), cmd.Name(), cmd.Address(), cmd.Phone())
	if err != nil {
		return kernel.Unassigned, err
	}

	if err = partyRepo.Add(ctx, p); err != nil {
		return kernel.Unassigned, err
	}

	if err = record(ctx, uow.OutboxRepository(), now, events.PartyRegistered{
		Role:    p.Role().String(),
		PartyID: p.ID().Uint64(),
		Account: p.Account().String(),
		Name:    p.Name(),
	}); err != nil {
		return kernel.Unassigned, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Unassigned, err
	}

	return id, nil
}

func (h RegisterPartyCommandHandler) authorize(ctx context.Context, uow RegistryUoW, cmd RegisterPartyCommand) error {
	if cmd.Role() == party.Customer {
		if !cmd.Caller().IsEqual(cmd.Account()) {
			return errs.NewUnauthorizedError(cmd.Caller().String(), "self-registering customer")
		}
		return nil
	}

	manager, err := uow.SettingsRepository().Manager(ctx)
	if err != nil {
		return err
	}
	return h.access.RequireManager(cmd.Caller(), manager)
}
