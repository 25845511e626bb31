package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every second.
const DefaultRelaySchedule = "* * * * * *"

// EventRelayer moves a batch of committed events to the broker.
type EventRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayEventsCommand) (int, error)
}

// OutboxRelayJob drains the outbox on a cron schedule. A run that is still
// publishing when the next tick fires makes that tick a no-op.
type OutboxRelayJob struct {
	relayer  EventRelayer
	cmd      commands.RelayEventsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob creates a job that relays up to batchSize events per run.
// The schedule uses the six field cron syntax with seconds.
func NewOutboxRelayJob(
	relayer EventRelayer,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayEventsCommand(batchSize)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	return &OutboxRelayJob{
		relayer:  relayer,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}, nil
}

func (j *OutboxRelayJob) Name() string {
	return "outbox relay job"
}

// Start schedules the relay.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays one batch and reports the outcome. It returns how many events
// were published.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	published, err := j.relayer.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "published", published, "error", err)
		return published
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "published", published)
	}
	return published
}

// Stop stops the schedule and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
