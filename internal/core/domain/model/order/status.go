package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status is the position of an order in its lifecycle:
//
//	Submitted ──> Confirmed ──> Dispatched ──> Delivered ──> Accepted
//
// Each transition has exactly one source status. There are no cancellations
// and no way back.
type Status int

const (
	// Unknown is the zero Status and never valid.
	Unknown Status = iota

	// Submitted: paid for by the customer, waiting for the restaurant.
	Submitted

	// Confirmed: accepted by the restaurant, eta is set.
	Confirmed

	// Dispatched: handed over for delivery, a Delivery record is waiting for a deliverer.
	Dispatched

	// Delivered: a deliverer has picked the delivery up.
	Delivered

	// Accepted: the customer acknowledged receipt. Final.
	Accepted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Submitted:  "Submitted",
		Confirmed:  "Confirmed",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Accepted:   "Accepted",
	}
}

func (s Status) Validate() error {
	if s < Submitted || s > Accepted {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveDeliverer checks that a deliverer is recorded exactly when the
// order has been picked up.
func (s Status) ValidateCanHaveDeliverer(deliverer bool) error {
	pickedUp := s == Delivered || s == Accepted
	if deliverer && !pickedUp {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a deliverer", s),
		)
	}
	if !deliverer && pickedUp {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no deliverer", s),
		)
	}
	return nil
}

// Confirm moves Submitted to Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.transition(Submitted, Confirmed, "confirm")
}

// Dispatch moves Confirmed to Dispatched.
func (s Status) Dispatch() (Status, error) {
	return s.transition(Confirmed, Dispatched, "dispatch")
}

// Deliver moves Dispatched to Delivered.
func (s Status) Deliver() (Status, error) {
	return s.transition(Dispatched, Delivered, "deliver")
}

// Accept moves Delivered to Accepted.
func (s Status) Accept() (Status, error) {
	return s.transition(Delivered, Accepted, "accept")
}

func (s Status) transition(from, to Status, action string) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), action)
	}
	return to, nil
}
