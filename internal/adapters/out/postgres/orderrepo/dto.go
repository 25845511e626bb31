// Package orderrepo persists orders. The restaurant, customer and deliverer
// columns are indexed; they back the per-party order listings.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

type OrderDTO struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement:false"`
	FoodID       uint64    `gorm:"not null"`
	RestaurantID uint64    `gorm:"not null;index"`
	CustomerID   uint64    `gorm:"not null;index"`
	DelivererID  uint64    `gorm:"not null;index"`
	Address      string    `gorm:"column:delivery_address;not null"`
	Phone        string    `gorm:"column:phone_number;type:varchar(64)"`
	Status       int       `gorm:"not null"`
	SubmittedAt  time.Time `gorm:"not null"`
	Price        string    `gorm:"type:varchar(40);not null"`
	EtaMillis    int64     `gorm:"column:eta_ms;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Uint64(),
		FoodID:       o.FoodID().Uint64(),
		RestaurantID: o.RestaurantID().Uint64(),
		CustomerID:   o.CustomerID().Uint64(),
		DelivererID:  o.DelivererID().Uint64(),
		Address:      o.Address(),
		Phone:        o.Phone(),
		Status:       int(o.Status()),
		SubmittedAt:  o.SubmittedAt(),
		Price:        o.Price().String(),
		EtaMillis:    o.Eta().Milliseconds(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	price, err := kernel.AmountFromString(dto.Price)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(
		kernel.EntityID(dto.ID),
		kernel.EntityID(dto.FoodID),
		kernel.EntityID(dto.RestaurantID),
		kernel.EntityID(dto.CustomerID),
		kernel.EntityID(dto.DelivererID),
		dto.Address,
		dto.Phone,
		order.Status(dto.Status),
		dto.SubmittedAt,
		price,
		time.Duration(dto.EtaMillis)*time.Millisecond,
	)
}
