package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one ledger mutation. Between Begin and
// Commit or Rollback no other mutation runs; repositories obtained after Begin
// read and write inside the transaction.
type UnitOfWork interface {
	// Begin starts the transaction, waiting for any other mutation to finish.
	// It honours ctx cancellation while waiting.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	PartyRepository() PartyRepository
	FoodRepository() FoodRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	SequenceRepository() SequenceRepository
	SettingsRepository() SettingsRepository
	OutboxRepository() OutboxRepository
}
