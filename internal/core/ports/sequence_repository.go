package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// SequenceRepository allocates identifiers, one counter per kind. Counters start
// at 1 and only move forward; an allocation rolled back with its transaction is
// handed out again.
type SequenceRepository interface {
	// Next allocates and returns the next identifier of kind.
	Next(ctx context.Context, kind kernel.Kind) (kernel.EntityID, error)

	// Peek returns the identifier Next would return, without allocating it.
	Peek(ctx context.Context, kind kernel.Kind) (kernel.EntityID, error)
}
