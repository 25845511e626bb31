package order

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is a customer's paid request for one catalog entry.
//
// Invariants:
//   - food, restaurant and customer are set at submission and never change
//   - price is what the customer paid and equals the food price at submission
//   - eta is zero until the restaurant confirms, then the food eta at that moment
//   - the deliverer is unassigned until pickup, then the claiming deliverer
type Order struct {
	id           kernel.EntityID
	foodID       kernel.EntityID
	restaurantID kernel.EntityID
	customerID   kernel.EntityID
	delivererID  kernel.EntityID
	address      string
	phone        string
	status       Status
	submittedAt  time.Time
	price        kernel.Amount
	eta          time.Duration

	isConstructed bool
}

// NewOrder records a submission in status Submitted with no eta and no deliverer.
func NewOrder(
	id, foodID, restaurantID, customerID kernel.EntityID,
	address, phone string,
	price kernel.Amount,
	submittedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Submitted,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		setReference("food id", &o.foodID, foodID),
		setReference("restaurant id", &o.restaurantID, restaurantID),
		setReference("customer id", &o.customerID, customerID),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}
	o.phone = strings.TrimSpace(phone)
	o.price = price
	o.submittedAt = submittedAt.UTC()

	return o, nil
}

// RestoreOrder rebuilds an order from storage and re-checks the status invariants.
func RestoreOrder(
	id, foodID, restaurantID, customerID, delivererID kernel.EntityID,
	address, phone string,
	status Status,
	submittedAt time.Time,
	price kernel.Amount,
	eta time.Duration,
) (*Order, error) {
	o, err := NewOrder(id, foodID, restaurantID, customerID, address, phone, price, submittedAt)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(
		status.Validate(),
		status.ValidateCanHaveDeliverer(delivererID.IsAssigned()),
	); err != nil {
		return nil, err
	}
	o.status = status
	o.delivererID = delivererID
	o.eta = eta
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.EntityID {
	return o.id
}

func (o *Order) FoodID() kernel.EntityID {
	return o.foodID
}

func (o *Order) RestaurantID() kernel.EntityID {
	return o.restaurantID
}

func (o *Order) CustomerID() kernel.EntityID {
	return o.customerID
}

// DelivererID returns kernel.Unassigned until a deliverer picks the order up.
func (o *Order) DelivererID() kernel.EntityID {
	return o.delivererID
}

func (o *Order) Address() string {
	return o.address
}

// Phone is the contact number given at submission.
func (o *Order) Phone() string {
	return o.phone
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) SubmittedAt() time.Time {
	return o.submittedAt
}

func (o *Order) Price() kernel.Amount {
	return o.price
}

func (o *Order) Eta() time.Duration {
	return o.eta
}

// IsPlacedBy reports whether customerID submitted the order.
func (o *Order) IsPlacedBy(customerID kernel.EntityID) bool {
	return o.customerID == customerID
}

// RemainingEta is eta minus the time elapsed since submission, never below zero.
// A clock reading before the submission counts as no time elapsed.
func (o *Order) RemainingEta(now time.Time) time.Duration {
	elapsed := max(now.Sub(o.submittedAt), 0)
	if elapsed >= o.eta {
		return 0
	}
	return o.eta - elapsed
}

// Confirm is the restaurant accepting the order; eta is the food's current estimate.
func (o *Order) Confirm(eta time.Duration) error {
	if eta < 0 {
		return errs.NewValueIsInvalidError("eta")
	}
	next, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = next
	o.eta = eta
	return nil
}

// Dispatch hands the order over for delivery.
func (o *Order) Dispatch() error {
	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkDelivered records the pickup by delivererID.
func (o *Order) MarkDelivered(delivererID kernel.EntityID) error {
	if err := delivererID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliverer id", err)
	}
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = next
	o.delivererID = delivererID
	return nil
}

// Accept is the customer acknowledging receipt.
func (o *Order) Accept() error {
	next, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.address = address
	return nil
}

func setReference(name string, dst *kernel.EntityID, id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}
