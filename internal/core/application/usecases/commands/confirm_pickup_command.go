package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand is a deliverer claiming a waiting delivery.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Account
	deliveryID kernel.EntityID

	guard guard.ConstructorGuard
}

func NewConfirmPickupCommand(caller kernel.Account, deliveryID kernel.EntityID) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setDeliveryID(deliveryID),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

func (c ConfirmPickupCommand) Caller() kernel.Account {
	return c.caller
}

func (c ConfirmPickupCommand) DeliveryID() kernel.EntityID {
	return c.deliveryID
}

func (c *ConfirmPickupCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ConfirmPickupCommand) setDeliveryID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}
