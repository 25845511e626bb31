package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetFoodQueryHandler struct {
	db *gorm.DB
}

func NewGetFoodQueryHandler(db *gorm.DB) GetFoodQueryHandler {
	return GetFoodQueryHandler{db: db}
}

func (h GetFoodQueryHandler) Handle(ctx context.Context, query GetFoodQuery) (FoodResponse, error) {
	if err := query.Validate(); err != nil {
		return FoodResponse{}, err
	}

	var row foodRow
	if err := findOne(ctx, h.db, &row, "food", query.FoodID(),
		"SELECT "+foodColumns+" FROM foods WHERE id = ?"); err != nil {
		return FoodResponse{}, err
	}

	return row.response()
}
