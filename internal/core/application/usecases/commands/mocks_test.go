package commands_test

import (
	"context"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() ports.Clock {
	return ports.ClockFunc(func() time.Time { return fixedNow })
}

type MockPartyRepository struct{ mock.Mock }

func (m *MockPartyRepository) Add(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Get(ctx context.Context, role party.Role, id kernel.EntityID) (*party.Party, error) {
	args := m.Called(ctx, role, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) IDOf(ctx context.Context, role party.Role, account kernel.Account) (kernel.EntityID, error) {
	args := m.Called(ctx, role, account)
	return args.Get(0).(kernel.EntityID), args.Error(1)
}

func (m *MockPartyRepository) IsMember(ctx context.Context, role party.Role, account kernel.Account) (bool, error) {
	args := m.Called(ctx, role, account)
	return args.Bool(0), args.Error(1)
}

type MockFoodRepository struct{ mock.Mock }

func (m *MockFoodRepository) Add(ctx context.Context, f *food.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFoodRepository) Update(ctx context.Context, f *food.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFoodRepository) Get(ctx context.Context, id kernel.EntityID) (*food.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*food.Food), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.EntityID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.EntityID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Next(ctx context.Context, kind kernel.Kind) (kernel.EntityID, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(kernel.EntityID), args.Error(1)
}

func (m *MockSequenceRepository) Peek(ctx context.Context, kind kernel.Kind) (kernel.EntityID, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(kernel.EntityID), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Manager(ctx context.Context) (kernel.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Account), args.Error(1)
}

func (m *MockSettingsRepository) SetManager(ctx context.Context, account kernel.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, envelope events.Envelope) error {
	args := m.Called(ctx, envelope)
	return args.Error(0)
}

func (m *MockOutboxRepository) ListPending(ctx context.Context, limit int) ([]events.Envelope, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]events.Envelope), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, envelope events.Envelope) error {
	args := m.Called(ctx, envelope)
	return args.Error(0)
}

// MockUnitOfWork satisfies every unit of work interface of the package.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) PartyRepository() ports.PartyRepository {
	args := m.Called()
	return args.Get(0).(ports.PartyRepository)
}

func (m *MockUnitOfWork) FoodRepository() ports.FoodRepository {
	args := m.Called()
	return args.Get(0).(ports.FoodRepository)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUnitOfWork) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

func (m *MockUnitOfWork) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

func (m *MockUnitOfWork) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

func registryFactory(uow *MockUnitOfWork) commands.RegistryUoWFactory {
	return commands.FuncRegistryUoWFactory(func() commands.RegistryUoW { return uow })
}

func catalogFactory(uow *MockUnitOfWork) commands.CatalogUoWFactory {
	return commands.FuncCatalogUoWFactory(func() commands.CatalogUoW { return uow })
}

func uowFactory(uow *MockUnitOfWork) commands.UoWFactory {
	return commands.FuncUoWFactory(func() commands.UoW { return uow })
}

func outboxFactory(uow *MockUnitOfWork) commands.OutboxUoWFactory {
	return commands.FuncOutboxUoWFactory(func() commands.OutboxUoW { return uow })
}
