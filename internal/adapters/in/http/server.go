package http

import (
	"math"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"

	"github.com/labstack/echo/v4"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	RegisterParty  commands.RegisterPartyCommandHandler
	ChangeManager  commands.ChangeManagerCommandHandler
	AddFood        commands.AddFoodCommandHandler
	UpdateFood     commands.UpdateFoodCommandHandler
	SubmitOrder    commands.SubmitOrderCommandHandler
	ConfirmOrder   commands.ConfirmOrderCommandHandler
	DispatchOrder  commands.DispatchOrderCommandHandler
	ConfirmPickup  commands.ConfirmPickupCommandHandler
	AcceptDelivery commands.AcceptDeliveryCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	GetOrder       queries.GetOrderQueryHandler
	GetFood        queries.GetFoodQueryHandler
	GetDelivery    queries.GetDeliveryQueryHandler
	GetEta         queries.GetEtaQueryHandler
	ListIndex      queries.ListIndexQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	ListFoods      queries.ListFoodsQueryHandler
	ListDeliveries queries.ListDeliveriesQueryHandler
}

// Server translates HTTP requests into commands and queries. The caller of a
// command is the subject of the request's bearer token.
type Server struct {
	commands Commands
	queries  Queries
}

func NewServer(commands Commands, queries Queries) *Server {
	return &Server{commands: commands, queries: queries}
}

// RegisterCustomer handles POST /api/v1/customers - the caller registers itself.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	caller := callerOf(c)
	return s.registerParty(c, party.Customer, caller, req.Name, req.Address, req.Phone)
}

// RegisterRestaurant handles POST /api/v1/restaurants.
func (s *Server) RegisterRestaurant(c echo.Context) error {
	return s.registerOther(c, party.Restaurant)
}

// RegisterDeliverer handles POST /api/v1/deliverers.
func (s *Server) RegisterDeliverer(c echo.Context) error {
	return s.registerOther(c, party.Deliverer)
}

func (s *Server) registerOther(c echo.Context, role party.Role) error {
	var req RegisterPartyRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	account, err := kernel.NewAccount(req.Account)
	if err != nil {
		return err
	}
	return s.registerParty(c, role, account, req.Name, req.Address, req.Phone)
}

func (s *Server) registerParty(c echo.Context, role party.Role, account kernel.Account, name, address, phone string) error {
	cmd, err := commands.NewRegisterPartyCommand(callerOf(c), role, account, name, address, phone)
	if err != nil {
		return err
	}
	id, err := s.commands.RegisterParty.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ChangeManager handles PUT /api/v1/manager.
func (s *Server) ChangeManager(c echo.Context) error {
	var req ChangeManagerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	account, err := kernel.NewAccount(req.Account)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeManagerCommand(callerOf(c), account)
	if err != nil {
		return err
	}
	if err = s.commands.ChangeManager.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddFood handles POST /api/v1/foods.
func (s *Server) AddFood(c echo.Context) error {
	var req FoodRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	eta, err := req.eta()
	if err != nil {
		return err
	}
	cmd, err := commands.NewAddFoodCommand(callerOf(c), req.Name, req.Description, req.Price, eta)
	if err != nil {
		return err
	}
	id, err := s.commands.AddFood.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateFood handles PUT /api/v1/foods/:id.
func (s *Server) UpdateFood(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req FoodRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	eta, err := req.eta()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateFoodCommand(callerOf(c), id, req.Name, req.Description, req.Price, eta)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateFood.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SubmitOrder handles POST /api/v1/orders.
func (s *Server) SubmitOrder(c echo.Context) error {
	var req SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewSubmitOrderCommand(
		callerOf(c), req.FoodID, req.RestaurantID, req.Address, req.Phone, req.Payment,
	)
	if err != nil {
		return err
	}
	id, err := s.commands.SubmitOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfirmOrderCommand(callerOf(c), id)
	if err != nil {
		return err
	}
	if err = s.commands.ConfirmOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch.
func (s *Server) DispatchOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDispatchOrderCommand(callerOf(c), id)
	if err != nil {
		return err
	}
	deliveryID, err := s.commands.DispatchOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, DispatchResponse{DeliveryID: deliveryID})
}

// AcceptDelivery handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAcceptDeliveryCommand(callerOf(c), id)
	if err != nil {
		return err
	}
	if err = s.commands.AcceptDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/v1/deliveries/:id/pickup.
func (s *Server) ConfirmPickup(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfirmPickupCommand(callerOf(c), id)
	if err != nil {
		return err
	}
	if err = s.commands.ConfirmPickup.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	order, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// GetEta handles GET /api/v1/orders/:id/eta.
func (s *Server) GetEta(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetEtaQuery(id)
	if err != nil {
		return err
	}
	eta, err := s.queries.GetEta.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EtaResponse{EtaMillis: eta.Milliseconds()})
}

// GetFood handles GET /api/v1/foods/:id.
func (s *Server) GetFood(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetFoodQuery(id)
	if err != nil {
		return err
	}
	food, err := s.queries.GetFood.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, food)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}
	delivery, err := s.queries.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, delivery)
}

// ListOrders handles GET /api/v1/orders?from=&to=.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := rangeQuery(c)
	if err != nil {
		return err
	}
	orders, err := s.queries.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ListFoods handles GET /api/v1/foods?from=&to=.
func (s *Server) ListFoods(c echo.Context) error {
	query, err := rangeQuery(c)
	if err != nil {
		return err
	}
	foods, err := s.queries.ListFoods.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, foods)
}

// ListDeliveries handles GET /api/v1/deliveries?from=&to=.
func (s *Server) ListDeliveries(c echo.Context) error {
	query, err := rangeQuery(c)
	if err != nil {
		return err
	}
	deliveries, err := s.queries.ListDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deliveries)
}

// ListIndex serves the per-party listings, e.g. GET /api/v1/customers/:id/orders.
func (s *Server) ListIndex(index queries.Index) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		query, err := queries.NewListIndexQuery(index, id)
		if err != nil {
			return err
		}
		ids, err := s.queries.ListIndex.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, ids)
	}
}

func pathID(c echo.Context) (kernel.EntityID, error) {
	return kernel.ParseEntityID(c.Param("id"))
}

const (
	// defaultPageSize applies when to is omitted.
	defaultPageSize = 100
	// maxPageSize bounds any single ranged read.
	maxPageSize = 1000
)

// rangeQuery reads the optional from and to parameters. A missing to yields
// one default page; a wider range is cut to maxPageSize identifiers.
func rangeQuery(c echo.Context) (queries.ListRangeQuery, error) {
	from := kernel.EntityID(1)
	if v := c.QueryParam("from"); v != "" {
		parsed, err := kernel.ParseEntityID(v)
		if err != nil {
			return queries.ListRangeQuery{}, err
		}
		from = max(parsed, 1)
	}

	to := pageEnd(from, defaultPageSize)
	if v := c.QueryParam("to"); v != "" {
		parsed, err := kernel.ParseEntityID(v)
		if err != nil {
			return queries.ListRangeQuery{}, err
		}
		to = min(parsed, pageEnd(from, maxPageSize))
	}
	return queries.NewListRangeQuery(from, to), nil
}

// pageEnd is from+size, saturating at the largest identifier.
func pageEnd(from kernel.EntityID, size uint64) kernel.EntityID {
	if uint64(from) > math.MaxUint64-size {
		return kernel.EntityID(math.MaxUint64)
	}
	return from + kernel.EntityID(size)
}
