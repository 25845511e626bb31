package http

import (
	"math"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// maxEtaMillis is the largest eta_ms that still fits a time.Duration.
const maxEtaMillis = math.MaxInt64 / int64(time.Millisecond)

type RegisterCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// RegisterPartyRequest registers someone else's account; used by the manager
// for restaurants and deliverers.
type RegisterPartyRequest struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type ChangeManagerRequest struct {
	Account string `json:"account"`
}

type FoodRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       kernel.Amount `json:"price"`
	EtaMillis   int64         `json:"eta_ms"`
}

// eta converts eta_ms. Negative values pass through for the command to reject.
func (r FoodRequest) eta() (time.Duration, error) {
	if r.EtaMillis > maxEtaMillis || r.EtaMillis < -maxEtaMillis {
		return 0, errs.NewValueIsOutOfRangeError("eta_ms", r.EtaMillis, 0, maxEtaMillis)
	}
	return time.Duration(r.EtaMillis) * time.Millisecond, nil
}

type SubmitOrderRequest struct {
	FoodID       kernel.EntityID `json:"food_id"`
	RestaurantID kernel.EntityID `json:"restaurant_id"`
	Address      string          `json:"delivery_address"`
	Phone        string          `json:"phone_number"`
	Payment      kernel.Amount   `json:"payment"`
}

type CreatedResponse struct {
	ID kernel.EntityID `json:"id"`
}

type DispatchResponse struct {
	DeliveryID kernel.EntityID `json:"delivery_id"`
}

type EtaResponse struct {
	EtaMillis int64 `json:"eta_ms"`
}
