package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingEnvelopes(t *testing.T) []events.Envelope {
	t.Helper()

	first, err := events.NewEnvelope(events.OrderAccepted{OrderID: 1, CustomerID: 1}, fixedNow)
	require.NoError(t, err)
	second, err := events.NewEnvelope(events.OrderAccepted{OrderID: 2, CustomerID: 1}, fixedNow)
	require.NoError(t, err)
	return []events.Envelope{first, second}
}

func TestRelayEventsCommandHandler_Handle_PublishesAndMarks(t *testing.T) {
	ctx := t.Context()
	pending := pendingEnvelopes(t)
	cmd, err := commands.NewRelayEventsCommand(10)
	require.NoError(t, err)

	outbox := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("ListPending", ctx, 10).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, pending[0]).Return(nil).Once(),
		publisher.On("Publish", ctx, pending[1]).Return(nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("MarkPublished", ctx, []kernel.UUID{pending[0].ID, pending[1].ID}, fixedNow).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRelayEventsCommandHandler(outboxFactory(uow), publisher, fixedClock())
	n, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	uow.AssertExpectations(t)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRelayEventsCommandHandler_Handle_StopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	pending := pendingEnvelopes(t)
	cmd, err := commands.NewRelayEventsCommand(10)
	require.NoError(t, err)

	outbox := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("ListPending", ctx, 10).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, pending[0]).Return(nil).Once(),
		publisher.On("Publish", ctx, pending[1]).Return(errors.New("broker down")).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("MarkPublished", ctx, []kernel.UUID{pending[0].ID}, fixedNow).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRelayEventsCommandHandler(outboxFactory(uow), publisher, fixedClock())
	n, err := h.Handle(ctx, cmd)

	require.ErrorContains(t, err, "broker down")
	assert.Equal(t, 1, n)
	uow.AssertExpectations(t)
	outbox.AssertExpectations(t)
}

func TestRelayEventsCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayEventsCommand(5)
	require.NoError(t, err)

	outbox := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("ListPending", ctx, 5).Return([]events.Envelope{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRelayEventsCommandHandler(outboxFactory(uow), publisher, fixedClock())
	n, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, n)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
