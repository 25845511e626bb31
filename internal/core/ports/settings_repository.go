package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// SettingsRepository keeps the ledger-wide singletons.
type SettingsRepository interface {
	// Manager returns the manager account, or the zero Account when none is set.
	Manager(ctx context.Context) (kernel.Account, error)

	SetManager(ctx context.Context, account kernel.Account) error
}
