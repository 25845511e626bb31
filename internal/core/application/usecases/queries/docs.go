// Package queries contains the read side of the ledger. Queries need no caller
// identity; every handler reads committed state straight from the database and
// never changes it.
//
// Point lookups and index listings fail with errs.ErrObjectNotFound when the
// record they start from does not exist. Range listings never fail on missing
// records: they clamp to the identifiers allocated so far and skip gaps.
package queries
