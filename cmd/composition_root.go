package cmd

import (
	"context"
	"io"
	"log/slog"
	"time"

	api "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/eventlog"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/rabbitmq"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	m := metrics.New()
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, commitObserver(m)),
		clock:      ports.ClockFunc(func() time.Time { return time.Now().UTC() }),
		metrics:    m,
		logger:     logger,
	}
}

func commitObserver(m *metrics.Metrics) postgres.CommitObserver {
	return func(tracked []postgres.TrackedAggregate) {
		kinds := make([]string, 0, len(tracked))
		for _, t := range tracked {
			kinds = append(kinds, t.Kind.String())
		}
		m.ObserveCommit(kinds)
	}
}

func (c *CompositionRoot) registryUoWFactory() commands.RegistryUoWFactory {
	return commands.FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return commands.FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return commands.FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return commands.FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) Migrate(ctx context.Context) error {
	return postgres.Migrate(ctx, c.gormDB)
}

// BootstrapManager stores the configured manager account unless one is
// already stored.
func (c *CompositionRoot) BootstrapManager(ctx context.Context) error {
	manager, err := kernel.NewAccount(c.cfg.LedgerManager)
	if err != nil {
		return err
	}
	cmd, err := commands.NewBootstrapManagerCommand(manager)
	if err != nil {
		return err
	}
	installed, err := c.CreateBootstrapManagerCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if installed {
		c.logger.InfoContext(ctx, "Ledger manager installed", "account", manager.String())
	}
	return nil
}

func (c *CompositionRoot) CreateBootstrapManagerCommandHandler() commands.BootstrapManagerCommandHandler {
	return commands.NewBootstrapManagerCommandHandler(c.registryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRegisterPartyCommandHandler() commands.RegisterPartyCommandHandler {
	return commands.NewRegisterPartyCommandHandler(c.registryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeManagerCommandHandler() commands.ChangeManagerCommandHandler {
	return commands.NewChangeManagerCommandHandler(c.registryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddFoodCommandHandler() commands.AddFoodCommandHandler {
	return commands.NewAddFoodCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateFoodCommandHandler() commands.UpdateFoodCommandHandler {
	return commands.NewUpdateFoodCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRelayEventsCommandHandler(publisher ports.EventPublisher) commands.RelayEventsCommandHandler {
	return commands.NewRelayEventsCommandHandler(c.outboxUoWFactory(), publisher, c.clock)
}

func (c *CompositionRoot) CreateQueries() api.Queries {
	return api.Queries{
		GetOrder:       queries.NewGetOrderQueryHandler(c.gormDB),
		GetFood:        queries.NewGetFoodQueryHandler(c.gormDB),
		GetDelivery:    queries.NewGetDeliveryQueryHandler(c.gormDB),
		GetEta:         queries.NewGetEtaQueryHandler(c.gormDB, c.clock),
		ListIndex:      queries.NewListIndexQueryHandler(c.gormDB),
		ListOrders:     queries.NewListOrdersQueryHandler(c.gormDB),
		ListFoods:      queries.NewListFoodsQueryHandler(c.gormDB),
		ListDeliveries: queries.NewListDeliveriesQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateAuthenticator() (*api.Authenticator, error) {
	return api.NewAuthenticator(c.cfg.JWTSecret, c.cfg.JWTTokenTTL, c.clock)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	auth, err := c.CreateAuthenticator()
	if err != nil {
		return nil, err
	}
	validator, err := api.NewRequestValidator()
	if err != nil {
		return nil, err
	}

	server := api.NewServer(
		api.Commands{
			RegisterParty:  c.CreateRegisterPartyCommandHandler(),
			ChangeManager:  c.CreateChangeManagerCommandHandler(),
			AddFood:        c.CreateAddFoodCommandHandler(),
			UpdateFood:     c.CreateUpdateFoodCommandHandler(),
			SubmitOrder:    c.CreateSubmitOrderCommandHandler(),
			ConfirmOrder:   c.CreateConfirmOrderCommandHandler(),
			DispatchOrder:  c.CreateDispatchOrderCommandHandler(),
			ConfirmPickup:  c.CreateConfirmPickupCommandHandler(),
			AcceptDelivery: c.CreateAcceptDeliveryCommandHandler(),
		},
		c.CreateQueries(),
	)

	return api.NewRouter(server, api.RouterConfig{
		Auth:      auth,
		Limiter:   api.NewRateLimiter(c.cfg.HTTPRateLimit, c.cfg.HTTPRateBurst),
		Validator: validator,
		Metrics:   c.metrics,
		Logger:    c.logger.With("component", "http"),
	}), nil
}

// CreateEventPublisher connects to the configured broker. The closer releases
// the connection.
func (c *CompositionRoot) CreateEventPublisher() (ports.EventPublisher, io.Closer, error) {
	switch c.cfg.EventBroker {
	case BrokerRabbitMQ:
		p, err := rabbitmq.Dial(rabbitmq.Config{URL: c.cfg.RabbitMQURL, Exchange: c.cfg.RabbitMQExchange})
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	case BrokerKafka:
		p, err := kafka.NewPublisher(kafka.Config{Brokers: c.cfg.KafkaBrokers, Topic: c.cfg.KafkaTopic})
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	default:
		return eventlog.NewPublisher(c.logger), io.NopCloser(nil), nil
	}
}

func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) (*jobs.JobManager, error) {
	relay, err := jobs.NewOutboxRelayJob(
		meteredRelayer{handler: c.CreateRelayEventsCommandHandler(publisher), metrics: c.metrics},
		c.cfg.RelaySchedule,
		c.cfg.RelayBatchSize,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(relay), nil
}

// meteredRelayer counts relayed events.
type meteredRelayer struct {
	handler commands.RelayEventsCommandHandler
	metrics *metrics.Metrics
}

func (r meteredRelayer) Handle(ctx context.Context, cmd commands.RelayEventsCommand) (int, error) {
	n, err := r.handler.Handle(ctx, cmd)
	r.metrics.ObserveRelayed(n)
	return n, err
}
