package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/sqlitetest"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// LedgerSuite drives the command handlers against a real SQLite ledger.
type LedgerSuite struct {
	suite.Suite

	factory *postgres.GormUnitOfWorkFactory
	now     time.Time

	manager kernel.Account
	pizza   kernel.Account
	burgers kernel.Account
	alice   kernel.Account
	bob     kernel.Account
	dave    kernel.Account
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	s.factory = postgres.NewGormUnitOfWorkFactory(sqlitetest.Open(s.T()), nil)
	s.now = fixedNow

	s.manager = kernel.MustNewAccount("manager")
	s.pizza = kernel.MustNewAccount("pizza-place")
	s.burgers = kernel.MustNewAccount("burger-bar")
	s.alice = kernel.MustNewAccount("alice")
	s.bob = kernel.MustNewAccount("bob")
	s.dave = kernel.MustNewAccount("dave")

	cmd, err := commands.NewBootstrapManagerCommand(s.manager)
	s.Require().NoError(err)
	installed, err := commands.NewBootstrapManagerCommandHandler(s.registry(), s.clock()).Handle(s.ctx(), cmd)
	s.Require().NoError(err)
	s.Require().True(installed)
}

func (s *LedgerSuite) ctx() context.Context {
	return s.T().Context()
}

func (s *LedgerSuite) clock() ports.Clock {
	return ports.ClockFunc(func() time.Time { return s.now })
}

func (s *LedgerSuite) registry() commands.RegistryUoWFactory {
	return commands.FuncRegistryUoWFactory(func() commands.RegistryUoW { return s.factory.Create() })
}

func (s *LedgerSuite) catalog() commands.CatalogUoWFactory {
	return commands.FuncCatalogUoWFactory(func() commands.CatalogUoW { return s.factory.Create() })
}

func (s *LedgerSuite) uow() commands.UoWFactory {
	return commands.FuncUoWFactory(func() commands.UoW { return s.factory.Create() })
}

// read runs fn in a unit of work that is rolled back afterwards.
func (s *LedgerSuite) read(fn func(uow ports.UnitOfWork)) {
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx()))
	defer func() {
		_ = uow.Rollback(s.ctx())
	}()
	fn(uow)
}

func (s *LedgerSuite) register(caller kernel.Account, role party.Role, account kernel.Account) (kernel.EntityID, error) {
	cmd, err := commands.NewRegisterPartyCommand(caller, role, account, account.String(), "Somewhere 1", "555-0100")
	s.Require().NoError(err)
	return commands.NewRegisterPartyCommandHandler(s.registry(), s.clock()).Handle(s.ctx(), cmd)
}

func (s *LedgerSuite) mustRegister(caller kernel.Account, role party.Role, account kernel.Account) kernel.EntityID {
	id, err := s.register(caller, role, account)
	s.Require().NoError(err)
	return id
}

func (s *LedgerSuite) addFood(caller kernel.Account, price uint64, eta time.Duration) (kernel.EntityID, error) {
	cmd, err := commands.NewAddFoodCommand(caller, "Margherita", "tomato, mozzarella", kernel.NewAmount(price), eta)
	s.Require().NoError(err)
	return commands.NewAddFoodCommandHandler(s.catalog(), s.clock()).Handle(s.ctx(), cmd)
}

func (s *LedgerSuite) submit(
	caller kernel.Account,
	foodID, restaurantID kernel.EntityID,
	payment uint64,
) (kernel.EntityID, error) {
	cmd, err := commands.NewSubmitOrderCommand(caller, foodID, restaurantID, "Elm St 5", "555-0199", kernel.NewAmount(payment))
	s.Require().NoError(err)
	return commands.NewSubmitOrderCommandHandler(s.uow(), s.clock()).Handle(s.ctx(), cmd)
}

func (s *LedgerSuite) confirm(caller kernel.Account, orderID kernel.EntityID) error {
	cmd, err := commands.NewConfirmOrderCommand(caller, orderID)
	s.Require().NoError(err)
	return commands.NewConfirmOrderCommandHandler(s.uow(), s.clock()).Handle(s.ctx(), cmd)
}

func (s *LedgerSuite) dispatch(caller kernel.Account, orderID kernel.EntityID) (kernel.EntityID, error) {
	cmd, err := commands.NewDispatchOrderCommand(caller, orderID)
	s.Require().NoError(err)
	return commands.NewDispatchOrderCommandHandler(s.uow(), s.clock()).Handle(s.ctx(), cmd)
}

func (s *LedgerSuite) pickup(caller kernel.Account, deliveryID kernel.EntityID) error {
	cmd, err := commands.NewConfirmPickupCommand(caller, deliveryID)
	s.Require().NoError(err)
	return commands.NewConfirmPickupCommandHandler(s.uow(), s.clock()).Handle(s.ctx(), cmd)
}

func (s *LedgerSuite) accept(caller kernel.Account, orderID kernel.EntityID) error {
	cmd, err := commands.NewAcceptDeliveryCommand(caller, orderID)
	s.Require().NoError(err)
	return commands.NewAcceptDeliveryCommandHandler(s.uow(), s.clock()).Handle(s.ctx(), cmd)
}

func (s *LedgerSuite) order(id kernel.EntityID) *order.Order {
	var o *order.Order
	s.read(func(uow ports.UnitOfWork) {
		var err error
		o, err = uow.OrderRepository().Get(s.ctx(), id)
		s.Require().NoError(err)
	})
	return o
}

func (s *LedgerSuite) delivery(id kernel.EntityID) *delivery.Delivery {
	var d *delivery.Delivery
	s.read(func(uow ports.UnitOfWork) {
		var err error
		d, err = uow.DeliveryRepository().Get(s.ctx(), id)
		s.Require().NoError(err)
	})
	return d
}

func (s *LedgerSuite) pendingEvents() []string {
	var names []string
	s.read(func(uow ports.UnitOfWork) {
		pending, err := uow.OutboxRepository().ListPending(s.ctx(), commands.MaxRelayBatchSize)
		s.Require().NoError(err)
		for _, e := range pending {
			names = append(names, e.Name)
		}
	})
	return names
}

func (s *LedgerSuite) TestFullLifecycle() {
	restaurantID := s.mustRegister(s.manager, party.Restaurant, s.pizza)
	customerID := s.mustRegister(s.alice, party.Customer, s.alice)
	delivererID := s.mustRegister(s.manager, party.Deliverer, s.dave)
	s.Equal(kernel.EntityID(1), restaurantID)
	s.Equal(kernel.EntityID(1), customerID)
	s.Equal(kernel.EntityID(1), delivererID)

	foodID, err := s.addFood(s.pizza, 500, 600*time.Second)
	s.Require().NoError(err)
	s.Equal(kernel.EntityID(1), foodID)

	orderID, err := s.submit(s.alice, foodID, restaurantID, 500)
	s.Require().NoError(err)
	s.Equal(kernel.EntityID(1), orderID)
	s.Equal(order.Submitted, s.order(orderID).Status())
	s.Zero(s.order(orderID).Eta())
	s.False(s.order(orderID).DelivererID().IsAssigned())

	s.Require().NoError(s.confirm(s.pizza, orderID))
	s.Equal(order.Confirmed, s.order(orderID).Status())
	s.Equal(600*time.Second, s.order(orderID).Eta())

	deliveryID, err := s.dispatch(s.pizza, orderID)
	s.Require().NoError(err)
	s.Equal(kernel.EntityID(1), deliveryID)
	s.Equal(order.Dispatched, s.order(orderID).Status())
	d := s.delivery(deliveryID)
	s.Equal(delivery.Waiting, d.Status())
	s.Equal(orderID, d.OrderID())
	s.False(d.DelivererID().IsAssigned())

	s.now = s.now.Add(5 * time.Minute)
	s.Require().NoError(s.pickup(s.dave, deliveryID))
	d = s.delivery(deliveryID)
	s.Equal(delivery.PickedUp, d.Status())
	s.Equal(delivererID, d.DelivererID())
	s.True(d.PickedUpAt().Equal(s.now))
	s.Equal(order.Delivered, s.order(orderID).Status())
	s.Equal(delivererID, s.order(orderID).DelivererID())

	s.Require().NoError(s.accept(s.alice, orderID))
	s.Equal(order.Accepted, s.order(orderID).Status())

	s.Equal([]string{
		"manager.changed",
		"restaurant.registered",
		"customer.registered",
		"deliverer.registered",
		"food.added",
		"order.submitted",
		"order.confirmed",
		"order.dispatched",
		"delivery.picked_up",
		"order.accepted",
	}, s.pendingEvents())
}

func (s *LedgerSuite) TestIdentifiersAreMonotonicPerKind() {
	for i, name := range []string{"c1", "c2", "c3"} {
		account := kernel.MustNewAccount(name)
		s.Equal(kernel.EntityID(i+1), s.mustRegister(account, party.Customer, account))
	}
	s.Equal(kernel.EntityID(1), s.mustRegister(s.manager, party.Restaurant, s.pizza))
	s.Equal(kernel.EntityID(2), s.mustRegister(s.manager, party.Restaurant, s.burgers))

	// one account, several roles, one id per role
	s.Equal(kernel.EntityID(4), s.mustRegister(s.dave, party.Customer, s.dave))
	s.Equal(kernel.EntityID(1), s.mustRegister(s.manager, party.Deliverer, s.dave))
}

func (s *LedgerSuite) TestRegistrationRules() {
	s.mustRegister(s.alice, party.Customer, s.alice)

	_, err := s.register(s.alice, party.Customer, s.alice)
	s.Require().ErrorIs(err, errs.ErrAlreadyRegistered)

	_, err = s.register(s.alice, party.Customer, s.bob)
	s.Require().ErrorIs(err, errs.ErrUnauthorized)

	_, err = s.register(s.alice, party.Restaurant, s.pizza)
	s.Require().ErrorIs(err, errs.ErrUnauthorized)

	_, err = s.register(s.pizza, party.Deliverer, s.dave)
	s.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (s *LedgerSuite) TestChangeManager() {
	change := func(caller, next kernel.Account) error {
		cmd, err := commands.NewChangeManagerCommand(caller, next)
		s.Require().NoError(err)
		return commands.NewChangeManagerCommandHandler(s.registry(), s.clock()).Handle(s.ctx(), cmd)
	}

	s.Require().ErrorIs(change(s.alice, s.alice), errs.ErrUnauthorized)
	s.Require().NoError(change(s.manager, s.bob))

	_, err := s.register(s.manager, party.Restaurant, s.pizza)
	s.Require().ErrorIs(err, errs.ErrUnauthorized)
	_, err = s.register(s.bob, party.Restaurant, s.pizza)
	s.Require().NoError(err)

	cmd, err := commands.NewBootstrapManagerCommand(s.manager)
	s.Require().NoError(err)
	installed, err := commands.NewBootstrapManagerCommandHandler(s.registry(), s.clock()).Handle(s.ctx(), cmd)
	s.Require().NoError(err)
	s.False(installed)
}

func (s *LedgerSuite) TestCatalogAuthorization() {
	s.mustRegister(s.manager, party.Restaurant, s.pizza)
	s.mustRegister(s.manager, party.Restaurant, s.burgers)

	_, err := s.addFood(s.alice, 100, time.Minute)
	s.Require().ErrorIs(err, errs.ErrUnauthorized)

	foodID, err := s.addFood(s.pizza, 100, time.Minute)
	s.Require().NoError(err)

	update := func(caller kernel.Account, id kernel.EntityID) error {
		cmd, err := commands.NewUpdateFoodCommand(caller, id, "Diavola", "spicy", kernel.NewAmount(120), 2*time.Minute)
		s.Require().NoError(err)
		return commands.NewUpdateFoodCommandHandler(s.catalog(), s.clock()).Handle(s.ctx(), cmd)
	}

	s.Require().ErrorIs(update(s.burgers, foodID), errs.ErrNotOwner)
	s.Require().ErrorIs(update(s.pizza, 42), errs.ErrObjectNotFound)
	s.Require().ErrorIs(update(s.alice, foodID), errs.ErrUnauthorized)

	s.now = s.now.Add(time.Hour)
	s.Require().NoError(update(s.pizza, foodID))
	s.read(func(uow ports.UnitOfWork) {
		f, err := uow.FoodRepository().Get(s.ctx(), foodID)
		s.Require().NoError(err)
		s.Equal("Diavola", f.Name())
		s.Equal("spicy", f.Description())
		s.Equal("120", f.Price().String())
		s.Equal(2*time.Minute, f.Eta())
		s.True(f.UpdatedAt().Equal(s.now))
	})
}

func (s *LedgerSuite) TestSubmissionChecks() {
	restaurantID := s.mustRegister(s.manager, party.Restaurant, s.pizza)
	otherID := s.mustRegister(s.manager, party.Restaurant, s.burgers)
	s.mustRegister(s.alice, party.Customer, s.alice)
	foodID, err := s.addFood(s.pizza, 500, time.Minute)
	s.Require().NoError(err)

	_, err = s.submit(s.bob, foodID, restaurantID, 500)
	s.Require().ErrorIs(err, errs.ErrUnauthorized)

	_, err = s.submit(s.alice, 99, restaurantID, 500)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = s.submit(s.alice, foodID, 99, 500)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = s.submit(s.alice, foodID, otherID, 500)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = s.submit(s.alice, foodID, restaurantID, 499)
	s.Require().ErrorIs(err, errs.ErrPaymentMismatch)
	_, err = s.submit(s.alice, foodID, restaurantID, 501)
	s.Require().ErrorIs(err, errs.ErrPaymentMismatch)

	// failed submissions allocate nothing
	orderID, err := s.submit(s.alice, foodID, restaurantID, 500)
	s.Require().NoError(err)
	s.Equal(kernel.EntityID(1), orderID)
}

func (s *LedgerSuite) TestOrderStateMachine() {
	restaurantID := s.mustRegister(s.manager, party.Restaurant, s.pizza)
	s.mustRegister(s.manager, party.Restaurant, s.burgers)
	s.mustRegister(s.alice, party.Customer, s.alice)
	s.mustRegister(s.bob, party.Customer, s.bob)
	s.mustRegister(s.manager, party.Deliverer, s.dave)
	foodID, err := s.addFood(s.pizza, 500, time.Minute)
	s.Require().NoError(err)
	orderID, err := s.submit(s.alice, foodID, restaurantID, 500)
	s.Require().NoError(err)

	_, err = s.dispatch(s.pizza, orderID)
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	s.Require().ErrorIs(s.accept(s.alice, orderID), errs.ErrInvalidTransition)

	s.Require().ErrorIs(s.confirm(s.burgers, orderID), errs.ErrNotOwner)
	s.Require().ErrorIs(s.confirm(s.alice, orderID), errs.ErrUnauthorized)
	s.Require().ErrorIs(s.confirm(s.pizza, 77), errs.ErrObjectNotFound)

	s.Require().NoError(s.confirm(s.pizza, orderID))
	s.Require().ErrorIs(s.confirm(s.pizza, orderID), errs.ErrInvalidTransition)

	deliveryID, err := s.dispatch(s.pizza, orderID)
	s.Require().NoError(err)
	_, err = s.dispatch(s.pizza, orderID)
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	s.Require().ErrorIs(s.accept(s.alice, orderID), errs.ErrInvalidTransition)

	s.Require().ErrorIs(s.pickup(s.alice, deliveryID), errs.ErrUnauthorized)
	s.Require().ErrorIs(s.pickup(s.dave, 5), errs.ErrObjectNotFound)
	s.Require().NoError(s.pickup(s.dave, deliveryID))
	s.Require().ErrorIs(s.pickup(s.dave, deliveryID), errs.ErrInvalidTransition)

	s.Require().ErrorIs(s.accept(s.bob, orderID), errs.ErrNotOwner)
	s.Require().NoError(s.accept(s.alice, orderID))
	s.Require().ErrorIs(s.accept(s.alice, orderID), errs.ErrInvalidTransition)
}

func (s *LedgerSuite) TestFailedOperationsRecordNoEvents() {
	s.mustRegister(s.manager, party.Restaurant, s.pizza)
	before := s.pendingEvents()

	_, err := s.addFood(s.alice, 100, time.Minute)
	s.Require().Error(err)
	_, err = s.register(s.alice, party.Restaurant, s.burgers)
	s.Require().Error(err)

	s.Equal(before, s.pendingEvents())
}

func (s *LedgerSuite) TestRelayDrainsOutbox() {
	s.mustRegister(s.alice, party.Customer, s.alice)
	s.mustRegister(s.bob, party.Customer, s.bob)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	outbox := commands.FuncOutboxUoWFactory(func() commands.OutboxUoW { return s.factory.Create() })
	h := commands.NewRelayEventsCommandHandler(outbox, publisher, s.clock())
	cmd, err := commands.NewRelayEventsCommand(2)
	s.Require().NoError(err)

	n, err := h.Handle(s.ctx(), cmd)
	s.Require().NoError(err)
	s.Equal(2, n)

	n, err = h.Handle(s.ctx(), cmd)
	s.Require().NoError(err)
	s.Equal(1, n)

	n, err = h.Handle(s.ctx(), cmd)
	s.Require().NoError(err)
	s.Zero(n)

	s.Empty(s.pendingEvents())
	publisher.AssertNumberOfCalls(s.T(), "Publish", 3)
}
