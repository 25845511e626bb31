// Package services holds domain logic that does not belong to a single aggregate.
//
// AccessController answers the three authorization questions every ledger
// mutation asks: is the caller whitelisted for a role, does the caller's
// party own the resource, and is the caller the manager.
package services
