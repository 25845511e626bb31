// Package sequencerepo allocates ledger identifiers from one counter row per kind.
package sequencerepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// SequenceDTO holds the next identifier to hand out for a kind.
type SequenceDTO struct {
	Kind   string `gorm:"type:varchar(32);primaryKey"`
	NextID uint64 `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "sequences"
}

// Seed creates the counter of every kind at 1 if it does not exist yet.
func Seed(ctx context.Context, db *gorm.DB) error {
	for _, kind := range kernel.Kinds() {
		row := SequenceDTO{Kind: string(kind)}
		if err := db.WithContext(ctx).
			Where(SequenceDTO{Kind: string(kind)}).
			Attrs(SequenceDTO{NextID: 1}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// GormSequenceRepository implements ports.SequenceRepository. Allocation is an
// in-place increment, so inside a transaction the counter row stays locked
// until commit and a rollback returns the identifier to the pool.
type GormSequenceRepository struct {
	db *gorm.DB
}

func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

func (r *GormSequenceRepository) Next(ctx context.Context, kind kernel.Kind) (kernel.EntityID, error) {
	if err := kind.Validate(); err != nil {
		return kernel.Unassigned, err
	}
	db := r.db.WithContext(ctx)

	result := db.Model(&SequenceDTO{}).
		Where("kind = ?", string(kind)).
		Update("next_id", gorm.Expr("next_id + ?", 1))
	if result.Error != nil {
		return kernel.Unassigned, result.Error
	}

	if result.RowsAffected == 0 {
		if err := db.Create(&SequenceDTO{Kind: string(kind), NextID: 2}).Error; err != nil {
			return kernel.Unassigned, err
		}
		return 1, nil
	}

	var row SequenceDTO
	if err := db.First(&row, "kind = ?", string(kind)).Error; err != nil {
		return kernel.Unassigned, err
	}
	return kernel.EntityID(row.NextID - 1), nil
}

func (r *GormSequenceRepository) Peek(ctx context.Context, kind kernel.Kind) (kernel.EntityID, error) {
	if err := kind.Validate(); err != nil {
		return kernel.Unassigned, err
	}

	var row SequenceDTO
	err := r.db.WithContext(ctx).First(&row, "kind = ?", string(kind)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 1, nil
	}
	if err != nil {
		return kernel.Unassigned, err
	}
	return kernel.EntityID(row.NextID), nil
}
