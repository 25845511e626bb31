package ports

import (
	"context"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
)

// DeliveryRepository stores delivery records, at most one per order.
type DeliveryRepository interface {
	Add(ctx context.Context, d *delivery.Delivery) error
	Update(ctx context.Context, d *delivery.Delivery) error
	Get(ctx context.Context, id kernel.EntityID) (*delivery.Delivery, error)
}
