package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// indexSources maps an index to the table and owner column it is read from.
var indexSources = map[Index]struct{ table, column string }{
	RestaurantFoods:     {"foods", "restaurant_id"},
	RestaurantOrders:    {"orders", "restaurant_id"},
	CustomerOrders:      {"orders", "customer_id"},
	DelivererDeliveries: {"deliveries", "deliverer_id"},
}

// ListIndexQueryHandler answers ListIndexQuery. The owning party must be
// registered; a registered party with nothing indexed gets an empty list.
type ListIndexQueryHandler struct {
	db *gorm.DB
}

func NewListIndexQueryHandler(db *gorm.DB) ListIndexQueryHandler {
	return ListIndexQueryHandler{db: db}
}

func (h ListIndexQueryHandler) Handle(ctx context.Context, query ListIndexQuery) ([]kernel.EntityID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	db := h.db.WithContext(ctx)
	owner := query.Index().Owner()

	var registered int64
	if err := db.Table("parties").
		Where("role = ? AND id = ?", int(owner), query.OwnerID().Uint64()).
		Count(&registered).Error; err != nil {
		return nil, err
	}
	if registered == 0 {
		return nil, errs.NewObjectNotFoundError(owner.String(), query.OwnerID())
	}

	source := indexSources[query.Index()]
	var raw []uint64
	if err := db.Table(source.table).
		Where(source.column+" = ?", query.OwnerID().Uint64()).
		Order("id").
		Pluck("id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.EntityID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, kernel.EntityID(id))
	}
	return ids, nil
}
