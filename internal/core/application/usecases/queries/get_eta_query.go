package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetEtaQueryIsNotConstructed = errors.New(
	"GetEtaQuery must be created via NewGetEtaQuery constructor",
)

// GetEtaQuery asks how much of an order's promised time is left.
//
// Example:
//
//	query, _ := NewGetEtaQuery(orderID)
//	remaining, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("about %s to go\n", remaining.Round(time.Minute))
type GetEtaQuery struct {
	orderID kernel.EntityID

	guard guard.ConstructorGuard
}

func NewGetEtaQuery(orderID kernel.EntityID) (GetEtaQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetEtaQuery{}, err
	}
	return GetEtaQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetEtaQuery) Validate() error {
	return q.guard.Validate(ErrGetEtaQueryIsNotConstructed)
}

func (q GetEtaQuery) OrderID() kernel.EntityID {
	return q.orderID
}
