package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrChangeManagerCommandIsNotConstructed = errors.New(
	"ChangeManagerCommand must be created via NewChangeManagerCommand constructor",
)

// ChangeManagerCommand hands the manager role to another account.
type ChangeManagerCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Account
	newManager kernel.Account

	guard guard.ConstructorGuard
}

func NewChangeManagerCommand(caller, newManager kernel.Account) (ChangeManagerCommand, error) {
	cmd := ChangeManagerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setNewManager(newManager),
	); err != nil {
		return ChangeManagerCommand{}, err
	}

	return cmd, nil
}

func (c ChangeManagerCommand) Validate() error {
	return c.guard.Validate(ErrChangeManagerCommandIsNotConstructed)
}

func (c ChangeManagerCommand) Caller() kernel.Account {
	return c.caller
}

func (c ChangeManagerCommand) NewManager() kernel.Account {
	return c.newManager
}

func (c *ChangeManagerCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ChangeManagerCommand) setNewManager(account kernel.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	c.newManager = account
	return nil
}
