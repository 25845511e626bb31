// Package postgres is the GORM persistence adapter of the ledger. It runs against
// PostgreSQL in production and SQLite in development and tests; nothing in it
// depends on a specific dialect.
//
// Every mutation goes through a GormUnitOfWork:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	id, err := uow.SequenceRepository().Next(ctx, kernel.KindOrder)
//	...
//	return uow.Commit(ctx)
//
// Units of work created by the same factory never overlap: Begin waits until the
// previous one has committed or rolled back. Combined with one database
// transaction per unit, every ledger operation is atomic and serialized.
package postgres

import (
	"context"

	"foodorder/internal/adapters/out/postgres/deliveryrepo"
	"foodorder/internal/adapters/out/postgres/foodrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/outboxrepo"
	"foodorder/internal/adapters/out/postgres/partyrepo"
	"foodorder/internal/adapters/out/postgres/sequencerepo"
	"foodorder/internal/adapters/out/postgres/settingsrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"golang.org/x/sync/semaphore"
	"gorm.io/gorm"
)

// TrackedAggregate is a record written by a unit of work.
type TrackedAggregate struct {
	Kind kernel.Kind
	ID   kernel.EntityID
}

// CommitObserver is told which records a unit of work wrote, after it committed.
type CommitObserver func(tracked []TrackedAggregate)

// GormUnitOfWorkFactory hands out units of work that share one write lock.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	writers  *semaphore.Weighted
	observer CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory over db. observer may be nil.
func NewGormUnitOfWorkFactory(db *gorm.DB, observer CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:       db,
		writers:  semaphore.NewWeighted(1),
		observer: observer,
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		writers:  f.writers,
		observer: f.observer,
	}
}

// GormUnitOfWork is one database transaction plus the write lock around it.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	writers  *semaphore.Weighted
	observer CommitObserver
	tracked  []TrackedAggregate
}

// Begin acquires the write lock and opens a transaction. Calling it again on an
// open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	if err := uow.writers.Acquire(ctx, 1); err != nil {
		return err
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		uow.writers.Release(1)
		return tx.Error
	}

	uow.tx = tx
	uow.tracked = nil
	return nil
}

// Commit commits the transaction, releases the write lock and reports the
// written records to the observer. gorm.ErrInvalidTransaction if not begun.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.writers.Release(1)

	if err == nil && uow.observer != nil && len(uow.tracked) > 0 {
		uow.observer(uow.tracked)
	}
	uow.tracked = nil
	return err
}

// Rollback discards the transaction and releases the write lock.
// gorm.ErrInvalidTransaction if there is nothing to roll back, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = nil
	uow.writers.Release(1)
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) PartyRepository() ports.PartyRepository {
	return partyrepo.NewGormPartyRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) FoodRepository() ports.FoodRepository {
	return foodrepo.NewGormFoodRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SequenceRepository() ports.SequenceRepository {
	return sequencerepo.NewGormSequenceRepository(uow.conn())
}

func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate is called by repositories for every record they write.
func (uow *GormUnitOfWork) TrackAggregate(kind kernel.Kind, id kernel.EntityID) {
	uow.tracked = append(uow.tracked, TrackedAggregate{Kind: kind, ID: id})
}
