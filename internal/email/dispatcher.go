package email

import (
	"context"
	"log"

	"github.com/Domenick1991/bookingservice/internal/domain"
)

type EmailSender interface {
	Send(ctx context.Context, event domain.BookingEvent) error
}

// Deduplicator records delivered events.
type Deduplicator interface {
	WasSent(ctx context.Context, eventID string) (bool, error)
	MarkSent(ctx context.Context, eventID string) error
}

// Dispatcher sends each event at least once. An event is marked only after a
// successful send, so a crash between the two replays the email rather than
// losing it. If the dedupe store is unavailable the email is sent anyway.
type Dispatcher struct {
	sender EmailSender
	dedupe Deduplicator
}

func NewDispatcher(sender EmailSender, dedupe Deduplicator) *Dispatcher {
	return &Dispatcher{sender: sender, dedupe: dedupe}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event domain.BookingEvent) error {
	if event.Email == "" {
		log.Printf("skip event %s for booking %s: no recipient", event.ID, event.BookingID)
		return nil
	}

	track := d.dedupe != nil && event.ID != ""
	if track {
		sent, err := d.dedupe.WasSent(ctx, event.ID)
		if err != nil {
			log.Printf("WARNING: dedupe check failed for event %s: %v", event.ID, err)
		} else if sent {
			log.Printf("skip duplicate event %s for booking %s", event.ID, event.BookingID)
			return nil
		}
	}

	if err := d.sender.Send(ctx, event); err != nil {
		return err
	}

	if track {
		if err := d.dedupe.MarkSent(ctx, event.ID); err != nil {
			log.Printf("WARNING: failed to mark event %s as sent: %v", event.ID, err)
		}
	}
	return nil
}
