package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Domenick1991/bookingservice/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key, eventType string, payload any) error
}

// EventNotifier publishes booking events to a topic, keyed by booking ID so
// events of one booking stay ordered within a partition.
type EventNotifier struct {
	publisher Publisher
	topic     string
}

func NewEventNotifier(publisher Publisher, topic string) *EventNotifier {
	return &EventNotifier{publisher: publisher, topic: topic}
}

func (n *EventNotifier) Notify(ctx context.Context, event domain.BookingEvent) error {
	if err := n.publisher.Publish(ctx, n.topic, event.BookingID, event.Type, event); err != nil {
		return err
	}
	log.Printf("queued %s notification %s for booking %s", event.Type, event.ID, event.BookingID)
	return nil
}

func DecodeEvent(data []byte) (domain.BookingEvent, error) {
	var event domain.BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return domain.BookingEvent{}, fmt.Errorf("decode booking event: %w", err)
	}
	return event, nil
}
