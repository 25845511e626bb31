package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand is a customer ordering one food item and paying for it.
// Payment is the value the host transferred along with the call.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(customer, foodID, restaurantID, "Elm St 5", "555-0100", kernel.NewAmount(500))
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPaymentMismatch) {
//	    // the payment differs from the current price
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	caller       kernel.Account
	foodID       kernel.EntityID
	restaurantID kernel.EntityID
	address      string
	phone        string
	payment      kernel.Amount

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(
	caller kernel.Account,
	foodID, restaurantID kernel.EntityID,
	address, phone string,
	payment kernel.Amount,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setFoodID(foodID),
		cmd.setRestaurantID(restaurantID),
		cmd.setAddress(address),
	); err != nil {
		return SubmitOrderCommand{}, err
	}
	cmd.phone = strings.TrimSpace(phone)
	cmd.payment = payment

	return cmd, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) Caller() kernel.Account {
	return c.caller
}

func (c SubmitOrderCommand) FoodID() kernel.EntityID {
	return c.foodID
}

func (c SubmitOrderCommand) RestaurantID() kernel.EntityID {
	return c.restaurantID
}

func (c SubmitOrderCommand) Address() string {
	return c.address
}

func (c SubmitOrderCommand) Phone() string {
	return c.phone
}

func (c SubmitOrderCommand) Payment() kernel.Amount {
	return c.payment
}

func (c *SubmitOrderCommand) setCaller(caller kernel.Account) error {
	if err := checkCaller(caller); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *SubmitOrderCommand) setFoodID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("food id", err)
	}
	c.foodID = id
	return nil
}

func (c *SubmitOrderCommand) setRestaurantID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	c.restaurantID = id
	return nil
}

func (c *SubmitOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
