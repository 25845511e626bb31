package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	orderColumns = "id, food_id, restaurant_id, customer_id, deliverer_id, delivery_address, " +
		"phone_number, status, submitted_at, price, eta_ms"
	foodColumns     = "id, restaurant_id, name, description, price, eta_ms, updated_at"
	deliveryColumns = "id, order_id, restaurant_id, customer_id, deliverer_id, delivery_address, " +
		"status, created_at, picked_up_at"
)

// OrderResponse is an order as seen by readers.
type OrderResponse struct {
	ID           kernel.EntityID `json:"id"`
	FoodID       kernel.EntityID `json:"food_id"`
	RestaurantID kernel.EntityID `json:"restaurant_id"`
	CustomerID   kernel.EntityID `json:"customer_id"`
	DelivererID  kernel.EntityID `json:"deliverer_id"`
	Address      string          `json:"delivery_address"`
	Phone        string          `json:"phone_number"`
	Status       string          `json:"status"`
	SubmittedAt  time.Time       `json:"submitted_at"`
	Price        kernel.Amount   `json:"price"`
	EtaMillis    int64           `json:"eta_ms"`
}

// FoodResponse is a catalog entry as seen by readers.
type FoodResponse struct {
	ID           kernel.EntityID `json:"id"`
	RestaurantID kernel.EntityID `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        kernel.Amount   `json:"price"`
	EtaMillis    int64           `json:"eta_ms"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DeliveryResponse is a delivery as seen by readers. PickedUpAt is nil while
// the delivery is waiting.
type DeliveryResponse struct {
	ID           kernel.EntityID `json:"id"`
	OrderID      kernel.EntityID `json:"order_id"`
	RestaurantID kernel.EntityID `json:"restaurant_id"`
	CustomerID   kernel.EntityID `json:"customer_id"`
	DelivererID  kernel.EntityID `json:"deliverer_id"`
	Address      string          `json:"delivery_address"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	PickedUpAt   *time.Time      `json:"picked_up_at,omitempty"`
}

type orderRow struct {
	ID           uint64
	FoodID       uint64
	RestaurantID uint64
	CustomerID   uint64
	DelivererID  uint64
	Address      string `gorm:"column:delivery_address"`
	Phone        string `gorm:"column:phone_number"`
	Status       int
	SubmittedAt  time.Time
	Price        string
	EtaMillis    int64 `gorm:"column:eta_ms"`
}

func (r orderRow) toDomain() (*order.Order, error) {
	price, err := kernel.AmountFromString(r.Price)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(
		kernel.EntityID(r.ID),
		kernel.EntityID(r.FoodID),
		kernel.EntityID(r.RestaurantID),
		kernel.EntityID(r.CustomerID),
		kernel.EntityID(r.DelivererID),
		r.Address,
		r.Phone,
		order.Status(r.Status),
		r.SubmittedAt,
		price,
		time.Duration(r.EtaMillis)*time.Millisecond,
	)
}

func (r orderRow) response() (OrderResponse, error) {
	price, err := kernel.AmountFromString(r.Price)
	if err != nil {
		return OrderResponse{}, err
	}
	return OrderResponse{
		ID:           kernel.EntityID(r.ID),
		FoodID:       kernel.EntityID(r.FoodID),
		RestaurantID: kernel.EntityID(r.RestaurantID),
		CustomerID:   kernel.EntityID(r.CustomerID),
		DelivererID:  kernel.EntityID(r.DelivererID),
		Address:      r.Address,
		Phone:        r.Phone,
		Status:       order.Status(r.Status).String(),
		SubmittedAt:  r.SubmittedAt.UTC(),
		Price:        price,
		EtaMillis:    r.EtaMillis,
	}, nil
}

type foodRow struct {
	ID           uint64
	RestaurantID uint64
	Name         string
	Description  string
	Price        string
	EtaMillis    int64 `gorm:"column:eta_ms"`
	UpdatedAt    time.Time
}

func (r foodRow) response() (FoodResponse, error) {
	price, err := kernel.AmountFromString(r.Price)
	if err != nil {
		return FoodResponse{}, err
	}
	return FoodResponse{
		ID:           kernel.EntityID(r.ID),
		RestaurantID: kernel.EntityID(r.RestaurantID),
		Name:         r.Name,
		Description:  r.Description,
		Price:        price,
		EtaMillis:    r.EtaMillis,
		UpdatedAt:    r.UpdatedAt.UTC(),
	}, nil
}

type deliveryRow struct {
	ID           uint64
	OrderID      uint64
	RestaurantID uint64
	CustomerID   uint64
	DelivererID  uint64
	Address      string `gorm:"column:delivery_address"`
	Status       int
	CreatedAt    time.Time
	PickedUpAt   *time.Time
}

func (r deliveryRow) response() DeliveryResponse {
	resp := DeliveryResponse{
		ID:           kernel.EntityID(r.ID),
		OrderID:      kernel.EntityID(r.OrderID),
		RestaurantID: kernel.EntityID(r.RestaurantID),
		CustomerID:   kernel.EntityID(r.CustomerID),
		DelivererID:  kernel.EntityID(r.DelivererID),
		Address:      r.Address,
		Status:       delivery.Status(r.Status).String(),
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if r.PickedUpAt != nil {
		at := r.PickedUpAt.UTC()
		resp.PickedUpAt = &at
	}
	return resp
}

// findOne scans the single row matched by query into dest, or reports the
// record as not found.
func findOne(ctx context.Context, db *gorm.DB, dest any, name string, id kernel.EntityID, query string) error {
	result := db.WithContext(ctx).Raw(query, id.Uint64()).Scan(dest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(name, id)
	}
	return nil
}
