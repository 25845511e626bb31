package foodrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFoodRepository implements ports.FoodRepository using GORM.
type GormFoodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind kernel.Kind, id kernel.EntityID)
}

func NewGormFoodRepository(db *gorm.DB, tracker aggregateTracker) *GormFoodRepository {
	return &GormFoodRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormFoodRepository) Add(ctx context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(kernel.KindFood, aggregate.ID())
	return nil
}

func (r *GormFoodRepository) Update(ctx context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FoodDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food", aggregate.ID())
	}

	r.tracker.TrackAggregate(kernel.KindFood, aggregate.ID())
	return nil
}

func (r *GormFoodRepository) Get(ctx context.Context, id kernel.EntityID) (*food.Food, error) {
	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
