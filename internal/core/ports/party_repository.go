// Package ports declares what the application core needs from the outside world:
// repositories bound to a unit of work, the clock, and the event publisher.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"
)

// PartyRepository stores the role whitelists and the account to id reverse index.
type PartyRepository interface {
	// Add stores a new registration. It fails with errs.ErrAlreadyRegistered when the
	// account already holds the role.
	Add(ctx context.Context, p *party.Party) error

	// Get returns the party registered under id in role, or errs.ErrObjectNotFound.
	Get(ctx context.Context, role party.Role, id kernel.EntityID) (*party.Party, error)

	// IDOf resolves an account within one role, or returns errs.ErrObjectNotFound.
	IDOf(ctx context.Context, role party.Role, account kernel.Account) (kernel.EntityID, error)

	// IsMember reports whether the account holds the role.
	IsMember(ctx context.Context, role party.Role, account kernel.Account) (bool, error)
}
