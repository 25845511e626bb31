package http

import (
	"log/slog"
	"net/http"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouterConfig struct {
	Auth    *Authenticator
	Limiter *RateLimiter
	// Validator is optional.
	Validator *RequestValidator
	// Metrics is optional.
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewRouter registers the API on a new echo instance.
//
// Reads are public. Writes need a bearer token; its subject is the caller.
// With a Validator, requests are checked against openapi.yaml once admitted.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", serveDocument)

	read := []echo.MiddlewareFunc{cfg.Limiter.Middleware(), cfg.Validator.Middleware()}
	write := []echo.MiddlewareFunc{cfg.Auth.Middleware(), cfg.Limiter.Middleware(), cfg.Validator.Middleware()}

	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer, write...)
	api.POST("/restaurants", s.RegisterRestaurant, write...)
	api.POST("/deliverers", s.RegisterDeliverer, write...)
	api.PUT("/manager", s.ChangeManager, write...)

	api.POST("/foods", s.AddFood, write...)
	api.PUT("/foods/:id", s.UpdateFood, write...)
	api.GET("/foods", s.ListFoods, read...)
	api.GET("/foods/:id", s.GetFood, read...)

	api.POST("/orders", s.SubmitOrder, write...)
	api.POST("/orders/:id/confirm", s.ConfirmOrder, write...)
	api.POST("/orders/:id/dispatch", s.DispatchOrder, write...)
	api.POST("/orders/:id/accept", s.AcceptDelivery, write...)
	api.GET("/orders", s.ListOrders, read...)
	api.GET("/orders/:id", s.GetOrder, read...)
	api.GET("/orders/:id/eta", s.GetEta, read...)

	api.POST("/deliveries/:id/pickup", s.ConfirmPickup, write...)
	api.GET("/deliveries", s.ListDeliveries, read...)
	api.GET("/deliveries/:id", s.GetDelivery, read...)

	api.GET("/restaurants/:id/foods", s.ListIndex(queries.RestaurantFoods), read...)
	api.GET("/restaurants/:id/orders", s.ListIndex(queries.RestaurantOrders), read...)
	api.GET("/customers/:id/orders", s.ListIndex(queries.CustomerOrders), read...)
	api.GET("/deliverers/:id/deliveries", s.ListIndex(queries.DelivererDeliveries), read...)

	return e
}
