// Package foodrepo persists the catalog.
package foodrepo

import (
	"time"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
)

// FoodDTO stores the price as decimal text: no portable SQL integer type holds
// 128 bits, and SQLite would coerce a long numeric string to a float.
type FoodDTO struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement:false"`
	RestaurantID uint64    `gorm:"not null;index"`
	Name         string    `gorm:"not null"`
	Description  string    `gorm:"type:text"`
	Price        string    `gorm:"type:varchar(40);not null"`
	EtaMillis    int64     `gorm:"column:eta_ms;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (FoodDTO) TableName() string {
	return "foods"
}

func fromDomain(f *food.Food) FoodDTO {
	return FoodDTO{
		ID:           f.ID().Uint64(),
		RestaurantID: f.RestaurantID().Uint64(),
		Name:         f.Name(),
		Description:  f.Description(),
		Price:        f.Price().String(),
		EtaMillis:    f.Eta().Milliseconds(),
		UpdatedAt:    f.UpdatedAt(),
	}
}

func toDomain(dto FoodDTO) (*food.Food, error) {
	price, err := kernel.AmountFromString(dto.Price)
	if err != nil {
		return nil, err
	}
	return food.RestoreFood(
		kernel.EntityID(dto.ID),
		kernel.EntityID(dto.RestaurantID),
		dto.Name,
		dto.Description,
		price,
		time.Duration(dto.EtaMillis)*time.Millisecond,
		dto.UpdatedAt,
	)
}
