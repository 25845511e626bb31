package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error in this package unwraps to exactly one of them,
// so callers classify failures with errors.Is and never by message.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotOwner          = errors.New("caller is not the owner")
	ErrPaymentMismatch   = errors.New("payment mismatch")
	ErrInvalidTransition = errors.New("invalid transition")
)

// ObjectNotFoundError reports that a record with the given identifier does not exist.
// ParamName names the kind of record ("order", "food", ...).
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports malformed input.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AlreadyRegisteredError reports that an account already holds the role it is being registered for.
type AlreadyRegisteredError struct {
	Role    string
	Account string
}

func NewAlreadyRegisteredError(role, account string) *AlreadyRegisteredError {
	return &AlreadyRegisteredError{Role: role, Account: account}
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s: account %s as %s", ErrAlreadyRegistered, sanitize(e.Account), e.Role)
}

func (e *AlreadyRegisteredError) Unwrap() error {
	return ErrAlreadyRegistered
}

// UnauthorizedError reports that the caller lacks the role an operation requires.
type UnauthorizedError struct {
	Account  string
	Required string
}

func NewUnauthorizedError(account, required string) *UnauthorizedError {
	return &UnauthorizedError{Account: account, Required: required}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: account %s is not a %s", ErrUnauthorized, sanitize(e.Account), e.Required)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// NotOwnerError reports that the caller holds the right role but does not own the resource.
type NotOwnerError struct {
	Resource string
	ID       any
	CallerID any
}

func NewNotOwnerError(resource string, id, callerID any) *NotOwnerError {
	return &NotOwnerError{Resource: resource, ID: id, CallerID: callerID}
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("%s: %s %s (caller %s)", ErrNotOwner, e.Resource, sanitize(e.ID), sanitize(e.CallerID))
}

func (e *NotOwnerError) Unwrap() error {
	return ErrNotOwner
}

// PaymentMismatchError reports that the transferred value differs from the price.
type PaymentMismatchError struct {
	Expected any
	Paid     any
}

func NewPaymentMismatchError(expected, paid any) *PaymentMismatchError {
	return &PaymentMismatchError{Expected: expected, Paid: paid}
}

func (e *PaymentMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, paid %s", ErrPaymentMismatch, sanitize(e.Expected), sanitize(e.Paid))
}

func (e *PaymentMismatchError) Unwrap() error {
	return ErrPaymentMismatch
}

// InvalidTransitionError reports a lifecycle action attempted from a status that does not allow it.
type InvalidTransitionError struct {
	Entity string
	From   string
	Action string
}

func NewInvalidTransitionError(entity, from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in status %s", ErrInvalidTransition, e.Action, e.Entity, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
