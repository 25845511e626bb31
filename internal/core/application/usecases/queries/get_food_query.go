package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetFoodQueryIsNotConstructed = errors.New(
	"GetFoodQuery must be created via NewGetFoodQuery constructor",
)

// GetFoodQuery looks up one catalog entry by identifier.
type GetFoodQuery struct {
	foodID kernel.EntityID

	guard guard.ConstructorGuard
}

func NewGetFoodQuery(foodID kernel.EntityID) (GetFoodQuery, error) {
	if err := foodID.Validate(); err != nil {
		return GetFoodQuery{}, err
	}
	return GetFoodQuery{
		foodID: foodID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetFoodQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodQueryIsNotConstructed)
}

func (q GetFoodQuery) FoodID() kernel.EntityID {
	return q.foodID
}
