package commands

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// MaxRelayBatchSize bounds the number of events one relay run reads.
const MaxRelayBatchSize = 1000

var ErrRelayEventsCommandIsNotConstructed = errors.New(
	"RelayEventsCommand must be created via NewRelayEventsCommand constructor",
)

// RelayEventsCommand publishes up to BatchSize pending outbox events.
type RelayEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayEventsCommand(batchSize int) (RelayEventsCommand, error) {
	if batchSize < 1 || batchSize > MaxRelayBatchSize {
		return RelayEventsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, MaxRelayBatchSize)
	}

	return RelayEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayEventsCommandIsNotConstructed)
}

func (c RelayEventsCommand) BatchSize() int {
	return c.batchSize
}
