package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand hands a confirmed order over for delivery.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Account
	orderID kernel.EntityID

	guard guard.ConstructorGuard
}

func NewDispatchOrderCommand(caller kernel.Account, orderID kernel.EntityID) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

func (c DispatchOrderCommand) Caller() kernel.Account {
	return c.caller
}

func (c DispatchOrderCommand) OrderID() kernel.EntityID {
	return c.orderID
}

func (c *DispatchOrderCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *DispatchOrderCommand) setOrderID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
