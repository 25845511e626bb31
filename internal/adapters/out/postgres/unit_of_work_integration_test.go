package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work and every repository it
// hands out against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory

	mu        sync.Mutex
	committed [][]postgres_adapter.TrackedAggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	if testing.Short() {
		suite.T().Skip("needs a container runtime")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, func(tracked []postgres_adapter.TrackedAggregate) {
		suite.mu.Lock()
		defer suite.mu.Unlock()
		suite.committed = append(suite.committed, tracked)
	})
}

// SetupTest empties every table and puts the counters back to 1.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parties, foods, orders, deliveries, sequences, settings, outbox").Error
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(context.Background(), suite.db))

	suite.mu.Lock()
	suite.committed = nil
	suite.mu.Unlock()
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) commits() [][]postgres_adapter.TrackedAggregate {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	return append([][]postgres_adapter.TrackedAggregate(nil), suite.committed...)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin on an open unit is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAndNotifies() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	id, err := uow.SequenceRepository().Next(ctx, kernel.KindCustomer)
	suite.Require().NoError(err)
	suite.Equal(kernel.EntityID(1), id)

	alice, err := party.NewParty(id, party.Customer, kernel.MustNewAccount("alice"), "Alice", "1 Main St", "555")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PartyRepository().Add(ctx, alice))

	envelope, err := events.NewEnvelope(
		events.PartyRegistered{Role: "customer", PartyID: id.Uint64(), Account: "alice", Name: "Alice"},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, envelope))

	suite.Empty(suite.commits(), "nothing is reported before commit")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([][]postgres_adapter.TrackedAggregate{
		{{Kind: kernel.KindCustomer, ID: 1}},
	}, suite.commits())

	reader := suite.factory.Create()
	got, err := reader.PartyRepository().Get(ctx, party.Customer, 1)
	suite.Require().NoError(err)
	suite.Equal("Alice", got.Name())

	pending, err := reader.OutboxRepository().ListPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(envelope.ID, pending[0].ID)
	suite.JSONEq(string(envelope.Payload), string(pending[0].Payload))

	next, err := reader.SequenceRepository().Peek(ctx, kernel.KindCustomer)
	suite.Require().NoError(err)
	suite.Equal(kernel.EntityID(2), next)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	id, err := uow.SequenceRepository().Next(ctx, kernel.KindRestaurant)
	suite.Require().NoError(err)
	pizza, err := party.NewParty(id, party.Restaurant, kernel.MustNewAccount("pizza"), "Pizza", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PartyRepository().Add(ctx, pizza))
	suite.Require().NoError(uow.SettingsRepository().SetManager(ctx, kernel.MustNewAccount("mallory")))

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Empty(suite.commits())

	reader := suite.factory.Create()
	_, err = reader.PartyRepository().Get(ctx, party.Restaurant, id)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	manager, err := reader.SettingsRepository().Manager(ctx)
	suite.Require().NoError(err)
	suite.True(manager.IsZero())

	next, err := reader.SequenceRepository().Peek(ctx, kernel.KindRestaurant)
	suite.Require().NoError(err)
	suite.Equal(kernel.EntityID(1), next, "a rolled back allocation is handed out again")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SequencesAreIndependentPerKind() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	seq := uow.SequenceRepository()
	for want := kernel.EntityID(1); want <= 3; want++ {
		got, err := seq.Next(ctx, kernel.KindFood)
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}

	got, err := seq.Next(ctx, kernel.KindOrder)
	suite.Require().NoError(err)
	suite.Equal(kernel.EntityID(1), got)

	_, err = seq.Next(ctx, kernel.Kind("invoice"))
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateRegistration() {
	ctx := context.Background()
	account := kernel.MustNewAccount("dave")

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	dave, err := party.NewParty(1, party.Deliverer, account, "Dave", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(first.PartyRepository().Add(ctx, dave))
	suite.Require().NoError(first.Commit(ctx))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	defer func() { _ = second.Rollback(ctx) }()

	again, err := party.NewParty(2, party.Deliverer, account, "Dave again", "", "")
	suite.Require().NoError(err)
	suite.ErrorIs(second.PartyRepository().Add(ctx, again), errs.ErrAlreadyRegistered)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderDeliveryWorkflow() {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o, err := order.NewOrder(1, 1, 1, 1, "1 Main St", "555", kernel.NewAmount(1200), now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.Confirm(15 * time.Minute))
	suite.Require().NoError(o.Dispatch())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([][]postgres_adapter.TrackedAggregate{{
		{Kind: kernel.KindOrder, ID: 1},
		{Kind: kernel.KindOrder, ID: 1},
	}}, suite.commits())

	got, err := suite.factory.Create().OrderRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(order.Dispatched, got.Status())
	suite.Equal(15*time.Minute, got.Eta())
	suite.True(got.Price().IsEqual(kernel.NewAmount(1200)))
}

// TestUnitOfWork_WritersAreSerialized checks that a second unit of work cannot
// begin while the first is open.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WritersAreSerialized() {
	ctx := context.Background()
	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))

	waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	suite.ErrorIs(suite.factory.Create().Begin(waitCtx), context.DeadlineExceeded)

	suite.Require().NoError(first.Commit(ctx))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	suite.Require().NoError(second.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
