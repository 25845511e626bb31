package services

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/pkg/errs"
)

// MemberLookup resolves a caller to its identifier within one role whitelist.
// It returns an errs.ObjectNotFoundError when the account holds no such role.
type MemberLookup interface {
	IDOf(ctx context.Context, role party.Role, account kernel.Account) (kernel.EntityID, error)
}

// AccessController holds the authorization predicates shared by every mutation.
// It keeps no state and short-circuits on the first failed check.
//
// Example:
//
//	restaurantID, err := ac.RequireRole(ctx, parties, caller, party.Restaurant)
//	if err != nil {
//	    return err // errs.ErrUnauthorized
//	}
//	if err = ac.RequireOwner("food", f.ID(), f.RestaurantID(), restaurantID); err != nil {
//	    return err // errs.ErrNotOwner
//	}
type AccessController struct{}

func NewAccessController() AccessController {
	return AccessController{}
}

// RequireRole returns the caller's identifier in role, or an UnauthorizedError
// if the caller is not whitelisted for it. Lookup failures other than
// "not found" are returned unchanged.
func (AccessController) RequireRole(
	ctx context.Context,
	members MemberLookup,
	caller kernel.Account,
	role party.Role,
) (kernel.EntityID, error) {
	if err := role.Validate(); err != nil {
		return kernel.Unassigned, err
	}
	if caller.IsZero() {
		return kernel.Unassigned, errs.NewUnauthorizedError("", role.String())
	}

	id, err := members.IDOf(ctx, role, caller)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.Unassigned, errs.NewUnauthorizedError(caller.String(), role.String())
	}
	if err != nil {
		return kernel.Unassigned, err
	}
	return id, nil
}

// RequireOwner fails with a NotOwnerError unless callerID is ownerID.
func (AccessController) RequireOwner(resource string, resourceID, ownerID, callerID kernel.EntityID) error {
	if ownerID != callerID {
		return errs.NewNotOwnerError(resource, resourceID, callerID)
	}
	return nil
}

// RequireManager fails with an UnauthorizedError unless caller is the manager.
// With no manager recorded nobody passes.
func (AccessController) RequireManager(caller, manager kernel.Account) error {
	if manager.IsZero() || !caller.IsEqual(manager) {
		return errs.NewUnauthorizedError(caller.String(), "manager")
	}
	return nil
}
