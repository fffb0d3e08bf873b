package producer

import (
	"context"
	"time"

	"go-storefront/internal/outbox"

	"go.uber.org/zap"
)

type Relay struct {
	repo      outbox.Repository
	writer    MessageWriter
	log       *zap.Logger
	interval  time.Duration
	batchSize int32
}

func NewRelay(repo outbox.Repository, writer MessageWriter, interval time.Duration, batchSize int, log *zap.Logger) *Relay {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 10
	}
	return &Relay{
		repo:      repo,
		writer:    writer,
		log:       log,
		interval:  interval,
		batchSize: int32(batchSize),
	}
}

// Run polls the outbox until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("outbox relay started", zap.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			r.log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.ProcessPending(ctx); err != nil {
				r.log.Error("outbox relay pass failed", zap.Error(err))
			}
		}
	}
}

// ProcessPending publishes one batch and returns how many events were sent.
func (r *Relay) ProcessPending(ctx context.Context) (int, error) {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	r.log.Debug("processing pending events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, r.writer, event); err != nil {
			r.log.Warn("publish event failed", zap.String("event_id", event.ID.String()), zap.Error(err))
			if err := r.repo.MarkFailed(ctx, event.ID); err != nil {
				r.log.Error("mark event failed", zap.String("event_id", event.ID.String()), zap.Error(err))
			}
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			r.log.Error("mark event sent failed", zap.String("event_id", event.ID.String()), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}
