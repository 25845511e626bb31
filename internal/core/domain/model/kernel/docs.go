// Package kernel holds the value objects shared by every aggregate of the ledger:
// EntityID and Kind for per-kind sequential identifiers, Account for caller identity,
// Amount for exact 128-bit prices and payments, and UUID for event identifiers.
package kernel
