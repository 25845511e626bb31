package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrListRangeQueryIsNotConstructed = errors.New(
	"ListRangeQuery must be created via NewListRangeQuery constructor",
)

// ListRangeQuery reads the records with identifiers in [From, To). Any bounds
// are accepted: From 0 reads from the first identifier, To beyond the last
// allocated identifier is clamped, and From >= To yields nothing.
//
// Example:
//
//	query := NewListRangeQuery(0, 1000)
//	orders, err := listOrders.Handle(ctx, query) // every order, at most 999 of them
type ListRangeQuery struct {
	from kernel.EntityID
	to   kernel.EntityID

	guard guard.ConstructorGuard
}

func NewListRangeQuery(from, to kernel.EntityID) ListRangeQuery {
	return ListRangeQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}
}

func (q ListRangeQuery) Validate() error {
	return q.guard.Validate(ErrListRangeQueryIsNotConstructed)
}

func (q ListRangeQuery) From() kernel.EntityID {
	return q.from
}

func (q ListRangeQuery) To() kernel.EntityID {
	return q.to
}
