// Package deliveryrepo persists delivery records.
package deliveryrepo

import (
	"time"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
)

type DeliveryDTO struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement:false"`
	OrderID      uint64     `gorm:"not null;uniqueIndex"`
	RestaurantID uint64     `gorm:"not null"`
	CustomerID   uint64     `gorm:"not null"`
	DelivererID  uint64     `gorm:"not null;index"`
	Address      string     `gorm:"column:delivery_address;not null"`
	Status       int        `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime:false;not null"`
	PickedUpAt   *time.Time `gorm:"index"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:           d.ID().Uint64(),
		OrderID:      d.OrderID().Uint64(),
		RestaurantID: d.RestaurantID().Uint64(),
		CustomerID:   d.CustomerID().Uint64(),
		DelivererID:  d.DelivererID().Uint64(),
		Address:      d.Address(),
		Status:       int(d.Status()),
		CreatedAt:    d.CreatedAt(),
	}
	if at := d.PickedUpAt(); !at.IsZero() {
		dto.PickedUpAt = &at
	}
	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	var pickedUpAt time.Time
	if dto.PickedUpAt != nil {
		pickedUpAt = *dto.PickedUpAt
	}
	return delivery.RestoreDelivery(
		kernel.EntityID(dto.ID),
		kernel.EntityID(dto.OrderID),
		kernel.EntityID(dto.RestaurantID),
		kernel.EntityID(dto.CustomerID),
		kernel.EntityID(dto.DelivererID),
		dto.Address,
		delivery.Status(dto.Status),
		dto.CreatedAt,
		pickedUpAt,
	)
}
