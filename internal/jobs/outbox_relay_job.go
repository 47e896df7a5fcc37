package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"storefront/internal/core/application/usecases/commands"
)

// DefaultRelaySchedule runs the relay every five seconds.
const DefaultRelaySchedule = "*/5 * * * * *"

// OutboxRelayer publishes one batch of pending outbox messages.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes pending outbox messages to the broker.
// A run that is still busy when the next tick fires causes that tick to be skipped.
type OutboxRelayJob struct {
	handler   OutboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger

	relayed  metric.Int64Counter
	failures metric.Int64Counter
}

// NewOutboxRelayJob creates the relay job. schedule is a six-field cron
// expression (with seconds); empty selects DefaultRelaySchedule.
func NewOutboxRelayJob(handler OutboxRelayer, schedule string, batchSize int, logger *slog.Logger) (*OutboxRelayJob, error) {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}

	meter := otel.Meter("storefront/jobs")
	relayed, err := meter.Int64Counter("outbox_messages_relayed",
		metric.WithDescription("Outbox messages published to the broker"))
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("outbox_relay_failures",
		metric.WithDescription("Relay runs that ended with an error"))
	if err != nil {
		return nil, err
	}

	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger:   logger.With("component", "outbox_relay_job"),
		relayed:  relayed,
		failures: failures,
	}, nil
}

// Start schedules the relay.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// RunOnce relays a single batch and reports how many messages were published.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay misconfigured", "error", err)
		return 0
	}

	n, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.failures.Add(ctx, 1)
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		return 0
	}
	if n > 0 {
		j.relayed.Add(ctx, int64(n))
		j.logger.DebugContext(ctx, "Outbox messages relayed", "count", n)
	}
	return n
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
