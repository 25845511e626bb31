package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	var row deliveryRow
	if err := findOne(ctx, h.db, &row, "delivery", query.DeliveryID(),
		"SELECT "+deliveryColumns+" FROM deliveries WHERE id = ?"); err != nil {
		return DeliveryResponse{}, err
	}

	return row.response(), nil
}
