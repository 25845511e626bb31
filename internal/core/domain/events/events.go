// Package events defines the notifications the ledger emits after a mutation
// commits. Each event is a flat JSON document; Envelope adds the identity and
// timestamp used by the outbox and the broker adapters.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// Event is implemented by every notification payload.
type Event interface {
	// EventName is the stable dotted name used as broker routing key.
	EventName() string
}

// PartyRegistered is emitted when an account joins a role whitelist.
type PartyRegistered struct {
	Role    string `json:"role"`
	PartyID uint64 `json:"party_id"`
	Account string `json:"account"`
	Name    string `json:"name"`
}

func (e PartyRegistered) EventName() string { return e.Role + ".registered" }

// ManagerChanged is emitted when the manager account is set or handed over.
type ManagerChanged struct {
	Previous string `json:"previous,omitempty"`
	Current  string `json:"current"`
}

func (ManagerChanged) EventName() string { return "manager.changed" }

// FoodAdded is emitted when a restaurant publishes a catalog entry.
type FoodAdded struct {
	FoodID       uint64        `json:"food_id"`
	RestaurantID uint64        `json:"restaurant_id"`
	Name         string        `json:"name"`
	Price        kernel.Amount `json:"price"`
	EtaMillis    int64         `json:"eta_ms"`
}

func (FoodAdded) EventName() string { return "food.added" }

// FoodUpdated is emitted when a restaurant overwrites a catalog entry.
type FoodUpdated struct {
	FoodID       uint64        `json:"food_id"`
	RestaurantID uint64        `json:"restaurant_id"`
	Name         string        `json:"name"`
	Price        kernel.Amount `json:"price"`
	EtaMillis    int64         `json:"eta_ms"`
}

func (FoodUpdated) EventName() string { return "food.updated" }

// OrderSubmitted carries the contact phone the customer gave with the order.
type OrderSubmitted struct {
	OrderID      uint64        `json:"order_id"`
	FoodID       uint64        `json:"food_id"`
	RestaurantID uint64        `json:"restaurant_id"`
	CustomerID   uint64        `json:"customer_id"`
	Address      string        `json:"delivery_address"`
	Phone        string        `json:"phone_number"`
	Price        kernel.Amount `json:"price"`
}

func (OrderSubmitted) EventName() string { return "order.submitted" }

type OrderConfirmed struct {
	OrderID      uint64 `json:"order_id"`
	RestaurantID uint64 `json:"restaurant_id"`
	EtaMillis    int64  `json:"eta_ms"`
}

func (OrderConfirmed) EventName() string { return "order.confirmed" }

// OrderDispatched announces a new delivery waiting for a deliverer.
type OrderDispatched struct {
	OrderID      uint64 `json:"order_id"`
	DeliveryID   uint64 `json:"delivery_id"`
	RestaurantID uint64 `json:"restaurant_id"`
	CustomerID   uint64 `json:"customer_id"`
	Address      string `json:"delivery_address"`
}

func (OrderDispatched) EventName() string { return "order.dispatched" }

type DeliveryPickedUp struct {
	DeliveryID  uint64 `json:"delivery_id"`
	OrderID     uint64 `json:"order_id"`
	DelivererID uint64 `json:"deliverer_id"`
}

func (DeliveryPickedUp) EventName() string { return "delivery.picked_up" }

type OrderAccepted struct {
	OrderID    uint64 `json:"order_id"`
	CustomerID uint64 `json:"customer_id"`
}

func (OrderAccepted) EventName() string { return "order.accepted" }

// Envelope is an encoded event ready for the outbox and the broker.
type Envelope struct {
	ID         kernel.UUID
	Name       string
	OccurredAt time.Time
	Payload    []byte
}

// NewEnvelope encodes e as JSON and stamps it with a fresh identifier.
func NewEnvelope(e Event, occurredAt time.Time) (Envelope, error) {
	if e == nil {
		return Envelope{}, errors.New("event is nil")
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s: %w", e.EventName(), err)
	}
	return Envelope{
		ID:         kernel.NewUUID(),
		Name:       e.EventName(),
		OccurredAt: occurredAt.UTC(),
		Payload:    payload,
	}, nil
}
