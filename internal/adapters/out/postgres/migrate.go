package postgres

import (
	"context"
	"fmt"

	"foodorder/internal/adapters/out/postgres/deliveryrepo"
	"foodorder/internal/adapters/out/postgres/foodrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/outboxrepo"
	"foodorder/internal/adapters/out/postgres/partyrepo"
	"foodorder/internal/adapters/out/postgres/sequencerepo"
	"foodorder/internal/adapters/out/postgres/settingsrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema and seeds one counter row per kind.
// It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&partyrepo.PartyDTO{},
		&foodrepo.FoodDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&sequencerepo.SequenceDTO{},
		&settingsrepo.SettingDTO{},
		&outboxrepo.OutboxDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := sequencerepo.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed sequences: %w", err)
	}
	return nil
}
