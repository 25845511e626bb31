package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRegisterPartyCommandIsNotConstructed = errors.New(
	"RegisterPartyCommand must be created via NewRegisterPartyCommand constructor",
)

// RegisterPartyCommand whitelists an account for a role.
//
// Customers register themselves (caller and account are the same); restaurants
// and deliverers are registered by the manager.
//
// Example:
//
//	cmd, err := NewRegisterPartyCommand(manager, party.Restaurant, account, "Pizza Hut", "Main St 1", "")
//	if err != nil {
//	    return err
//	}
//	restaurantID, err := handler.Handle(ctx, cmd)
type RegisterPartyCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Account
	role    party.Role
	account kernel.Account
	name    string
	address string
	phone   string

	guard guard.ConstructorGuard
}

func NewRegisterPartyCommand(
	caller kernel.Account,
	role party.Role,
	account kernel.Account,
	name, address, phone string,
) (RegisterPartyCommand, error) {
	cmd := RegisterPartyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setRole(role),
		cmd.setAccount(account),
		cmd.setName(name),
	); err != nil {
		return RegisterPartyCommand{}, err
	}
	cmd.address = strings.TrimSpace(address)
	cmd.phone = strings.TrimSpace(phone)

	return cmd, nil
}

func (c RegisterPartyCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartyCommandIsNotConstructed)
}

func (c RegisterPartyCommand) Caller() kernel.Account {
	return c.caller
}

func (c RegisterPartyCommand) Role() party.Role {
	return c.role
}

// Account is the account being whitelisted.
func (c RegisterPartyCommand) Account() kernel.Account {
	return c.account
}

func (c RegisterPartyCommand) Name() string {
	return c.name
}

func (c RegisterPartyCommand) Address() string {
	return c.address
}

func (c RegisterPartyCommand) Phone() string {
	return c.phone
}

func (c *RegisterPartyCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RegisterPartyCommand) setRole(role party.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterPartyCommand) setAccount(account kernel.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	c.account = account
	return nil
}

func (c *RegisterPartyCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
