package commands

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// checkCaller rejects commands issued without a caller identity.
func checkCaller(caller kernel.Account) error {
	if err := caller.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("caller", err)
	}
	return nil
}
