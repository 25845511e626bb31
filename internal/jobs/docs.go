// Package jobs provides scheduled background tasks for the ledger service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field expressions with
// seconds) and log through slog with a "component" attribute.
//
// # Available Jobs
//
// OutboxRelayJob publishes committed ledger events. Every mutation writes its
// events to the outbox table in the same transaction; the relay reads a batch,
// hands it to the configured publisher (RabbitMQ, Kafka or the log) and marks
// what was accepted. Overlapping runs are skipped.
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(relayHandler, "*/2 * * * * *", 100, logger)
//	if err != nil {
//		return err
//	}
//	manager := jobs.NewJobManager(relay)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
