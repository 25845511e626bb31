package queries

import (
	"context"
	"time"

	"foodorder/internal/core/ports"

	"gorm.io/gorm"
)

// GetEtaQueryHandler computes eta minus the time elapsed since submission,
// floored at zero. An order that is not confirmed yet has no eta and reports zero.
type GetEtaQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

func NewGetEtaQueryHandler(db *gorm.DB, clock ports.Clock) GetEtaQueryHandler {
	return GetEtaQueryHandler{db: db, clock: clock}
}

func (h GetEtaQueryHandler) Handle(ctx context.Context, query GetEtaQuery) (time.Duration, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var row orderRow
	if err := findOne(ctx, h.db, &row, "order", query.OrderID(),
		"SELECT "+orderColumns+" FROM orders WHERE id = ?"); err != nil {
		return 0, err
	}

	o, err := row.toDomain()
	if err != nil {
		return 0, err
	}

	return o.RemainingEta(h.clock.Now()), nil
}
