package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAddFoodCommandIsNotConstructed = errors.New(
	"AddFoodCommand must be created via NewAddFoodCommand constructor",
)

// AddFoodCommand publishes a new catalog entry for the calling restaurant.
//
// Example:
//
//	cmd, err := NewAddFoodCommand(restaurant, "Margherita", "tomato, mozzarella", kernel.NewAmount(500), 10*time.Minute)
//	if err != nil {
//	    return err
//	}
//	foodID, err := handler.Handle(ctx, cmd)
type AddFoodCommand struct { //nolint:recvcheck //using for validation
	caller      kernel.Account
	name        string
	description string
	price       kernel.Amount
	eta         time.Duration

	guard guard.ConstructorGuard
}

func NewAddFoodCommand(
	caller kernel.Account,
	name, description string,
	price kernel.Amount,
	eta time.Duration,
) (AddFoodCommand, error) {
	cmd := AddFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setName(name),
		cmd.setEta(eta),
	); err != nil {
		return AddFoodCommand{}, err
	}
	cmd.description = strings.TrimSpace(description)
	cmd.price = price

	return cmd, nil
}

func (c AddFoodCommand) Validate() error {
	return c.guard.Validate(ErrAddFoodCommandIsNotConstructed)
}

func (c AddFoodCommand) Caller() kernel.Account {
	return c.caller
}

func (c AddFoodCommand) Name() string {
	return c.name
}

func (c AddFoodCommand) Description() string {
	return c.description
}

func (c AddFoodCommand) Price() kernel.Amount {
	return c.price
}

// Eta is the preparation and delivery time the restaurant promises.
func (c AddFoodCommand) Eta() time.Duration {
	return c.eta
}

func (c *AddFoodCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddFoodCommand) setName(name string) error {
	name, err := checkFoodName(name)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *AddFoodCommand) setEta(eta time.Duration) error {
	if err := checkEta(eta); err != nil {
		return err
	}
	c.eta = eta
	return nil
}

func checkFoodName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	return name, nil
}

func checkEta(eta time.Duration) error {
	if eta < 0 {
		return errs.NewValueIsInvalidErrorWithCause("eta", fmt.Errorf("%s is negative", eta))
	}
	return nil
}
