package producer

import (
	"context"
	"nursery-admin/internal/messaging/kafka"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultBatchSize = 50

// Relay drains pending outbox rows and publishes them to Kafka. Rows that
// fail to publish are marked failed and retried on a later poll with the
// backoff the outbox table applies.
type Relay struct {
	repo         kafka.OutboxRepository
	writer       *kafkago.Writer
	logger       *zap.Logger
	pollInterval time.Duration
	batchSize    int
}

func NewRelay(repo kafka.OutboxRepository, writer *kafkago.Writer, logger *zap.Logger, pollInterval time.Duration) *Relay {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	l := zap.L()
	if logger != nil {
		l = logger
	}
	return &Relay{
		repo:         repo,
		writer:       writer,
		logger:       l.Named("kafka.outbox.relay"),
		pollInterval: pollInterval,
		batchSize:    defaultBatchSize,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started", zap.Duration("poll_interval", r.pollInterval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if err := r.drainOnce(ctx); err != nil {
				r.logger.Error("drain outbox failed", zap.Error(err))
			}
		}
	}
}

func (r *Relay) drainOnce(ctx context.Context) error {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	r.logger.Debug("draining outbox", zap.Int("count", len(events)))

	for _, event := range events {
		if err := r.publish(ctx, event); err != nil {
			r.logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = r.repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			r.logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		r.logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}

func (r *Relay) publish(ctx context.Context, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}
	return r.writer.WriteMessages(ctx, msg)
}
