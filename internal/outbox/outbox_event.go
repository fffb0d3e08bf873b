package outbox

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

const (
	AggregateCheckout = "checkout"

	EventCheckoutCompleted = "CHECKOUT_COMPLETED"
	EventCartCleanupFailed = "CART_CLEANUP_FAILED"
	EventCheckoutUnmatched = "CHECKOUT_UNMATCHED"
)

type Event struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       json.RawMessage
	Status        string
	CreatedAt     time.Time
	ProcessedAt   sql.NullTime
}
