package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand is the restaurant accepting a submitted order.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Account
	orderID kernel.EntityID

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(caller kernel.Account, orderID kernel.EntityID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) Caller() kernel.Account {
	return c.caller
}

func (c ConfirmOrderCommand) OrderID() kernel.EntityID {
	return c.orderID
}

func (c *ConfirmOrderCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ConfirmOrderCommand) setOrderID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
