package outbox

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e Event) error
	ListPending(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

const (
	insertEventSQL = `INSERT INTO outbox_events (id, aggregate_type, aggregate_id, event_type, payload, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	listPendingSQL = `SELECT id, aggregate_type, aggregate_id, event_type, payload, status, created_at, processed_at
FROM outbox_events
WHERE status = $1
ORDER BY created_at
LIMIT $2`

	markStatusSQL = `UPDATE outbox_events SET status = $2, processed_at = NOW() WHERE id = $1`
)

type outboxRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) Create(ctx context.Context, e Event) error {
	if e.Status == "" {
		e.Status = StatusPending
	}
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID, e.AggregateType, e.AggregateID, e.EventType, []byte(e.Payload), e.Status, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, listPendingSQL, StatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending outbox events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e       Event
			payload []byte
		)
		if err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &payload, &e.Status, &e.CreatedAt, &e.ProcessedAt); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		e.Payload = payload
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return r.markStatus(ctx, id, StatusSent)
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.markStatus(ctx, id, StatusFailed)
}

func (r *outboxRepository) markStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx, markStatusSQL, id, status)
	if err != nil {
		return fmt.Errorf("mark outbox event %s: %w", status, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("mark outbox event %s: %w", status, sql.ErrNoRows)
	}
	return nil
}
