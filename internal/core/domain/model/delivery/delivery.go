package delivery

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the courier leg of an order, created once when the restaurant
// dispatches. It copies the order's restaurant, customer and address so a
// deliverer can work from the delivery record alone.
type Delivery struct {
	id           kernel.EntityID
	orderID      kernel.EntityID
	restaurantID kernel.EntityID
	customerID   kernel.EntityID
	delivererID  kernel.EntityID
	address      string
	status       Status
	createdAt    time.Time
	pickedUpAt   time.Time

	isConstructed bool
}

// NewDelivery creates a Waiting delivery with no deliverer.
func NewDelivery(
	id, orderID, restaurantID, customerID kernel.EntityID,
	address string,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		setReference("order id", &d.orderID, orderID),
		setReference("restaurant id", &d.restaurantID, restaurantID),
		setReference("customer id", &d.customerID, customerID),
		d.setAddress(address),
	); err != nil {
		return nil, err
	}
	d.createdAt = now.UTC()

	return d, nil
}

// RestoreDelivery rebuilds a delivery from storage.
func RestoreDelivery(
	id, orderID, restaurantID, customerID, delivererID kernel.EntityID,
	address string,
	status Status,
	createdAt, pickedUpAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, restaurantID, customerID, address, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (status == PickedUp) != delivererID.IsAssigned() {
		return nil, errs.NewValueIsInvalidError("deliverer id")
	}
	d.status = status
	d.delivererID = delivererID
	if !pickedUpAt.IsZero() {
		d.pickedUpAt = pickedUpAt.UTC()
	}
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.EntityID {
	return d.id
}

func (d *Delivery) OrderID() kernel.EntityID {
	return d.orderID
}

func (d *Delivery) RestaurantID() kernel.EntityID {
	return d.restaurantID
}

func (d *Delivery) CustomerID() kernel.EntityID {
	return d.customerID
}

// DelivererID is kernel.Unassigned while the delivery is Waiting.
func (d *Delivery) DelivererID() kernel.EntityID {
	return d.delivererID
}

func (d *Delivery) Address() string {
	return d.address
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// PickedUpAt is the zero time while the delivery is Waiting.
func (d *Delivery) PickedUpAt() time.Time {
	return d.pickedUpAt
}

// PickUp lets delivererID claim the delivery. The first claim wins; any later
// claim fails with an InvalidTransitionError.
func (d *Delivery) PickUp(delivererID kernel.EntityID, now time.Time) error {
	if err := delivererID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliverer id", err)
	}
	next, err := d.status.PickUp()
	if err != nil {
		return err
	}
	d.status = next
	d.delivererID = delivererID
	d.pickedUpAt = now.UTC()
	return nil
}

func (d *Delivery) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	d.address = address
	return nil
}

func setReference(name string, dst *kernel.EntityID, id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}
