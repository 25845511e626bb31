package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	if err := findOne(ctx, h.db, &row, "order", query.OrderID(),
		"SELECT "+orderColumns+" FROM orders WHERE id = ?"); err != nil {
		return OrderResponse{}, err
	}

	return row.response()
}
