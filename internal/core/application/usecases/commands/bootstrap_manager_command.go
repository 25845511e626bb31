package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrBootstrapManagerCommandIsNotConstructed = errors.New(
	"BootstrapManagerCommand must be created via NewBootstrapManagerCommand constructor",
)

// BootstrapManagerCommand installs the first manager of a fresh ledger.
// It is issued by the process at startup, never by a caller.
type BootstrapManagerCommand struct { //nolint:recvcheck //using for validation
	manager kernel.Account

	guard guard.ConstructorGuard
}

func NewBootstrapManagerCommand(manager kernel.Account) (BootstrapManagerCommand, error) {
	if err := manager.Validate(); err != nil {
		return BootstrapManagerCommand{}, err
	}

	return BootstrapManagerCommand{
		manager: manager,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c BootstrapManagerCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapManagerCommandIsNotConstructed)
}

func (c BootstrapManagerCommand) Manager() kernel.Account {
	return c.manager
}
