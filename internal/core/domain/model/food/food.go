package food

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood or RestoreFood")

// Food is a catalog entry owned by one restaurant. The owner never changes;
// everything else is overwritten by Update. UpdatedAt is the creation time until
// the first update and the time of the latest update afterwards.
type Food struct {
	id           kernel.EntityID
	restaurantID kernel.EntityID
	name         string
	description  string
	price        kernel.Amount
	eta          time.Duration
	updatedAt    time.Time

	isConstructed bool
}

// NewFood creates a catalog entry stamped with now.
func NewFood(
	id, restaurantID kernel.EntityID,
	name, description string,
	price kernel.Amount,
	eta time.Duration,
	now time.Time,
) (*Food, error) {
	f := &Food{isConstructed: true}

	if err := errors.Join(
		f.setID(id),
		f.setRestaurantID(restaurantID),
		f.setDetails(name, description, price, eta),
	); err != nil {
		return nil, err
	}
	f.updatedAt = now.UTC()

	return f, nil
}

// RestoreFood rebuilds a catalog entry from storage, keeping its stored timestamp.
func RestoreFood(
	id, restaurantID kernel.EntityID,
	name, description string,
	price kernel.Amount,
	eta time.Duration,
	updatedAt time.Time,
) (*Food, error) {
	return NewFood(id, restaurantID, name, description, price, eta, updatedAt)
}

func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

func (f *Food) ID() kernel.EntityID {
	return f.id
}

// RestaurantID returns the owning restaurant.
func (f *Food) RestaurantID() kernel.EntityID {
	return f.restaurantID
}

func (f *Food) Name() string {
	return f.name
}

func (f *Food) Description() string {
	return f.description
}

func (f *Food) Price() kernel.Amount {
	return f.price
}

// Eta is the preparation-and-delivery estimate copied onto orders at confirmation.
func (f *Food) Eta() time.Duration {
	return f.eta
}

func (f *Food) UpdatedAt() time.Time {
	return f.updatedAt
}

// IsOwnedBy reports whether restaurantID owns the entry.
func (f *Food) IsOwnedBy(restaurantID kernel.EntityID) bool {
	return f.restaurantID == restaurantID
}

// Update overwrites every mutable field and refreshes the timestamp.
// On error the entry is left untouched.
func (f *Food) Update(name, description string, price kernel.Amount, eta time.Duration, now time.Time) error {
	next := *f
	if err := next.setDetails(name, description, price, eta); err != nil {
		return err
	}
	next.updatedAt = now.UTC()
	*f = next
	return nil
}

func (f *Food) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Food) setRestaurantID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	f.restaurantID = id
	return nil
}

func (f *Food) setDetails(name, description string, price kernel.Amount, eta time.Duration) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if eta < 0 {
		return errs.NewValueIsInvalidErrorWithCause("eta", fmt.Errorf("%s is negative", eta))
	}
	f.name = name
	f.description = strings.TrimSpace(description)
	f.price = price
	f.eta = eta
	return nil
}
