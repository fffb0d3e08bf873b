package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder stores domain events for the relay worker to publish.
//
//go:generate mockgen -source=outbox_service.go -destination=../mock/outbox/outbox_service_mock.go -package=mock
type Recorder interface {
	Record(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) error
}

type Deps struct {
	// Repo may be nil when no database is configured; events are then only
	// logged.
	Repo   Repository
	Logger *zap.Logger
	Now    func() time.Time
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(deps Deps) Recorder {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{repo: deps.Repo, logger: deps.Logger, now: deps.Now}
}

func (s *service) Record(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", eventType, err)
	}

	e := Event{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       body,
		Status:        StatusPending,
		CreatedAt:     s.now().UTC(),
	}

	s.logger.Info("outbox event",
		zap.String("event_id", e.ID.String()),
		zap.String("event_type", eventType),
		zap.String("aggregate_id", aggregateID),
		zap.ByteString("payload", body),
	)

	if s.repo == nil {
		return nil
	}
	return s.repo.Create(ctx, e)
}
