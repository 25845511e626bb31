package delivery

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status of a delivery: Waiting ──> PickedUp.
type Status int

const (
	Unknown Status = iota
	// Waiting for any registered deliverer to claim it.
	Waiting
	// PickedUp by the deliverer recorded on the delivery. Final.
	PickedUp
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Waiting:  "Waiting",
		PickedUp: "PickedUp",
	}
}

func (s Status) Validate() error {
	if s != Waiting && s != PickedUp {
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

// PickUp moves Waiting to PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Waiting {
		return Unknown, errs.NewInvalidTransitionError("delivery", s.String(), "pick up")
	}
	return PickedUp, nil
}
