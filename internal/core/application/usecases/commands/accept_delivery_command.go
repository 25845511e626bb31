package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand is the customer acknowledging that the order arrived.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Account
	orderID kernel.EntityID

	guard guard.ConstructorGuard
}

func NewAcceptDeliveryCommand(caller kernel.Account, orderID kernel.EntityID) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

func (c AcceptDeliveryCommand) Caller() kernel.Account {
	return c.caller
}

func (c AcceptDeliveryCommand) OrderID() kernel.EntityID {
	return c.orderID
}

func (c *AcceptDeliveryCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AcceptDeliveryCommand) setOrderID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
