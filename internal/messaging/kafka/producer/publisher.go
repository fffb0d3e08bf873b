package producer

import (
	"context"

	"go-storefront/internal/outbox"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the relay needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

func publishEvent(ctx context.Context, writer MessageWriter, event outbox.Event) error {
	msg := kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "event_id", Value: []byte(event.ID.String())},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
