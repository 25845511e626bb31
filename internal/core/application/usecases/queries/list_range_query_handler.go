package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads a range of orders.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListRangeQuery) ([]OrderResponse, error) {
	var rows []orderRow
	if err := scanRange(ctx, h.db, query, kernel.KindOrder, orderColumns, "orders", &rows); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		resp, err := row.response()
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}
	return orders, nil
}

// ListFoodsQueryHandler reads a range of catalog entries.
type ListFoodsQueryHandler struct {
	db *gorm.DB
}

func NewListFoodsQueryHandler(db *gorm.DB) ListFoodsQueryHandler {
	return ListFoodsQueryHandler{db: db}
}

func (h ListFoodsQueryHandler) Handle(ctx context.Context, query ListRangeQuery) ([]FoodResponse, error) {
	var rows []foodRow
	if err := scanRange(ctx, h.db, query, kernel.KindFood, foodColumns, "foods", &rows); err != nil {
		return nil, err
	}

	foods := make([]FoodResponse, 0, len(rows))
	for _, row := range rows {
		resp, err := row.response()
		if err != nil {
			return nil, err
		}
		foods = append(foods, resp)
	}
	return foods, nil
}

// ListDeliveriesQueryHandler reads a range of deliveries.
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListRangeQuery) ([]DeliveryResponse, error) {
	var rows []deliveryRow
	if err := scanRange(ctx, h.db, query, kernel.KindDelivery, deliveryColumns, "deliveries", &rows); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0, len(rows))
	for _, row := range rows {
		deliveries = append(deliveries, row.response())
	}
	return deliveries, nil
}

// scanRange clamps the query to the identifiers allocated for kind and scans
// the existing rows of table in that range into dest.
func scanRange(
	ctx context.Context,
	db *gorm.DB,
	query ListRangeQuery,
	kind kernel.Kind,
	columns, table string,
	dest any,
) error {
	if err := query.Validate(); err != nil {
		return err
	}
	db = db.WithContext(ctx)

	next, err := nextID(db, kind)
	if err != nil {
		return err
	}

	from := max(query.From(), 1)
	to := min(query.To(), next)
	if from >= to {
		return nil
	}

	return db.Raw("SELECT "+columns+" FROM "+table+" WHERE id >= ? AND id < ? ORDER BY id",
		from.Uint64(), to.Uint64()).Scan(dest).Error
}

// nextID is the identifier the sequence of kind hands out next; 1 if the
// sequence was never used.
func nextID(db *gorm.DB, kind kernel.Kind) (kernel.EntityID, error) {
	var next []uint64
	if err := db.Table("sequences").Where("kind = ?", string(kind)).Pluck("next_id", &next).Error; err != nil {
		return kernel.Unassigned, err
	}
	if len(next) == 0 {
		return 1, nil
	}
	return kernel.EntityID(next[0]), nil
}
