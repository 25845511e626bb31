package queries

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListIndexQueryIsNotConstructed = errors.New(
	"ListIndexQuery must be created via NewListIndexQuery constructor",
)

// Index names a per-party listing of child identifiers.
type Index int

const (
	UnknownIndex Index = iota
	// RestaurantFoods lists the catalog entries of a restaurant.
	RestaurantFoods
	// RestaurantOrders lists the orders placed with a restaurant.
	RestaurantOrders
	// CustomerOrders lists the orders a customer placed.
	CustomerOrders
	// DelivererDeliveries lists the deliveries a deliverer picked up.
	DelivererDeliveries
)

func getIndexStrings() map[Index]string {
	return map[Index]string{
		UnknownIndex:        "unknown",
		RestaurantFoods:     "restaurant foods",
		RestaurantOrders:    "restaurant orders",
		CustomerOrders:      "customer orders",
		DelivererDeliveries: "deliverer deliveries",
	}
}

func (i Index) String() string {
	if str, ok := getIndexStrings()[i]; ok {
		return str
	}
	return "unknown"
}

func (i Index) Validate() error {
	if i < RestaurantFoods || i > DelivererDeliveries {
		return errs.NewValueIsInvalidErrorWithCause("index", fmt.Errorf("%d is not a valid index", i))
	}
	return nil
}

// Owner is the role whose identifiers the index is keyed by.
func (i Index) Owner() party.Role {
	switch i {
	case RestaurantFoods, RestaurantOrders:
		return party.Restaurant
	case CustomerOrders:
		return party.Customer
	case DelivererDeliveries:
		return party.Deliverer
	default:
		return party.Unknown
	}
}

// ListIndexQuery lists, in ascending order, the identifiers an index holds for
// one party.
//
// Example:
//
//	query, _ := NewListIndexQuery(CustomerOrders, customerID)
//	orderIDs, err := handler.Handle(ctx, query)
type ListIndexQuery struct {
	index   Index
	ownerID kernel.EntityID

	guard guard.ConstructorGuard
}

func NewListIndexQuery(index Index, ownerID kernel.EntityID) (ListIndexQuery, error) {
	if err := errors.Join(index.Validate(), ownerID.Validate()); err != nil {
		return ListIndexQuery{}, err
	}
	return ListIndexQuery{
		index:   index,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListIndexQuery) Validate() error {
	return q.guard.Validate(ErrListIndexQueryIsNotConstructed)
}

func (q ListIndexQuery) Index() Index {
	return q.index
}

func (q ListIndexQuery) OwnerID() kernel.EntityID {
	return q.ownerID
}
