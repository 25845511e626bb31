package commands

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateFoodCommandIsNotConstructed = errors.New(
	"UpdateFoodCommand must be created via NewUpdateFoodCommand constructor",
)

// UpdateFoodCommand overwrites every mutable field of a catalog entry.
// Orders already submitted keep the price they were paid with.
type UpdateFoodCommand struct { //nolint:recvcheck //using for validation
	caller      kernel.Account
	foodID      kernel.EntityID
	name        string
	description string
	price       kernel.Amount
	eta         time.Duration

	guard guard.ConstructorGuard
}

func NewUpdateFoodCommand(
	caller kernel.Account,
	foodID kernel.EntityID,
	name, description string,
	price kernel.Amount,
	eta time.Duration,
) (UpdateFoodCommand, error) {
	cmd := UpdateFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setFoodID(foodID),
		cmd.setName(name),
		cmd.setEta(eta),
	); err != nil {
		return UpdateFoodCommand{}, err
	}
	cmd.description = strings.TrimSpace(description)
	cmd.price = price

	return cmd, nil
}

func (c UpdateFoodCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodCommandIsNotConstructed)
}

func (c UpdateFoodCommand) Caller() kernel.Account {
	return c.caller
}

func (c UpdateFoodCommand) FoodID() kernel.EntityID {
	return c.foodID
}

func (c UpdateFoodCommand) Name() string {
	return c.name
}

func (c UpdateFoodCommand) Description() string {
	return c.description
}

func (c UpdateFoodCommand) Price() kernel.Amount {
	return c.price
}

func (c UpdateFoodCommand) Eta() time.Duration {
	return c.eta
}

func (c *UpdateFoodCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateFoodCommand) setFoodID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.foodID = id
	return nil
}

func (c *UpdateFoodCommand) setName(name string) error {
	name, err := checkFoodName(name)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *UpdateFoodCommand) setEta(eta time.Duration) error {
	if err := checkEta(eta); err != nil {
		return err
	}
	c.eta = eta
	return nil
}
