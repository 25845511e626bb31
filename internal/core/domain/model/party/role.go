package party

import (
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Role is the whitelist a party is registered in. An account may hold several
// roles, each with its own identifier.
type Role int

const (
	// Unknown is the zero Role and never valid.
	Unknown Role = iota
	Customer
	Restaurant
	Deliverer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:    "unknown",
		Customer:   "customer",
		Restaurant: "restaurant",
		Deliverer:  "deliverer",
	}
}

// ParseRole accepts the lower-case names returned by String.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != Unknown && name == strings.ToLower(strings.TrimSpace(s)) {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r != Customer && r != Restaurant && r != Deliverer {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Kind returns the identifier space the role allocates from.
func (r Role) Kind() kernel.Kind {
	switch r {
	case Customer:
		return kernel.KindCustomer
	case Restaurant:
		return kernel.KindRestaurant
	case Deliverer:
		return kernel.KindDeliverer
	default:
		return ""
	}
}

// Roles lists the valid roles.
func Roles() []Role {
	return []Role{Customer, Restaurant, Deliverer}
}
