package kernel

import (
	"fmt"
	"strconv"

	"foodorder/internal/pkg/errs"
)

// EntityID is the ledger identifier of a record. Identifiers are allocated per Kind,
// start at 1 and are never reused. Zero means "unassigned", e.g. the deliverer of an
// order nobody has picked up yet.
type EntityID uint64

// Unassigned is the zero EntityID.
const Unassigned EntityID = 0

// ParseEntityID parses a decimal identifier. Zero is accepted and yields Unassigned.
func ParseEntityID(s string) (EntityID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Unassigned, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return EntityID(v), nil
}

func (id EntityID) IsAssigned() bool {
	return id != Unassigned
}

// Validate rejects the unassigned identifier.
func (id EntityID) Validate() error {
	if id == Unassigned {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

func (id EntityID) Uint64() uint64 {
	return uint64(id)
}

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Kind names an identifier space. Each kind has its own counter.
type Kind string

const (
	KindCustomer   Kind = "customer"
	KindRestaurant Kind = "restaurant"
	KindDeliverer  Kind = "deliverer"
	KindFood       Kind = "food"
	KindOrder      Kind = "order"
	KindDelivery   Kind = "delivery"
)

// Kinds lists every identifier space in allocation-table order.
func Kinds() []Kind {
	return []Kind{KindCustomer, KindRestaurant, KindDeliverer, KindFood, KindOrder, KindDelivery}
}

func (k Kind) Validate() error {
	for _, known := range Kinds() {
		if k == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known kind", string(k)))
}

func (k Kind) String() string {
	return string(k)
}
