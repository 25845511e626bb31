package ports

import (
	"context"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
)

// FoodRepository stores the catalog.
type FoodRepository interface {
	Add(ctx context.Context, f *food.Food) error

	// Update overwrites an existing entry; errs.ErrObjectNotFound if there is none.
	Update(ctx context.Context, f *food.Food) error

	Get(ctx context.Context, id kernel.EntityID) (*food.Food, error)
}
