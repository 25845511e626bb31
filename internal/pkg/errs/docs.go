// Package errs provides the typed errors shared by every layer of the ledger.
//
// Each kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrUnauthorized, ...)
//   - a struct carrying the details of one failure
//   - NewXError constructors (and NewXErrorWithCause where a cause makes sense)
//   - Unwrap returning the sentinel, so errors.Is classifies the failure
//
// The ledger kinds map one to one onto the outcomes a caller can observe:
// ObjectNotFoundError, AlreadyRegisteredError, UnauthorizedError, NotOwnerError,
// PaymentMismatchError and InvalidTransitionError. The Value* kinds cover
// malformed input rejected before any state is touched.
package errs
