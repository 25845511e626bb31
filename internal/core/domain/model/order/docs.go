// Package order provides the Order aggregate and its lifecycle.
//
// An order moves strictly forward through Submitted, Confirmed, Dispatched,
// Delivered and Accepted. Every transition method checks the current status
// and returns an errs.InvalidTransitionError when called out of turn, leaving
// the order unchanged.
package order
