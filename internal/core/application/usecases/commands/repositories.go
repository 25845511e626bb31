// Package commands contains the ledger operations that change state.
// Every handler follows the same shape: validate the command, open a unit of work,
// check authorization and preconditions, mutate, record events in the outbox, commit.
// A handler that returns an error has written nothing.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces scoped to what each group of handlers touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PartyRepoFactory interface {
		PartyRepository() ports.PartyRepository
	}

	FoodRepoFactory interface {
		FoodRepository() ports.FoodRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// RegistryUoW covers the whitelists and the manager setting.
	RegistryUoW interface {
		TxManager
		PartyRepoFactory
		SequenceRepoFactory
		SettingsRepoFactory
		OutboxRepoFactory
	}

	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// CatalogUoW covers restaurants publishing food.
	CatalogUoW interface {
		TxManager
		PartyRepoFactory
		FoodRepoFactory
		SequenceRepoFactory
		OutboxRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OutboxUoW is used by the relay, which only reads and marks events.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW spans every repository. The order and delivery lifecycles need it
	// because a single step reads the catalog and writes orders and deliveries.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... mutate, record events
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		PartyRepoFactory
		FoodRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		SequenceRepoFactory
		SettingsRepoFactory
		OutboxRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
