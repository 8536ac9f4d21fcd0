package email

import (
	"context"
	"log"

	"github.com/Domenick1991/bookingservice/internal/domain"
)

// Sender "sends" confirmation emails by writing them to the log.
type Sender struct {
	logger *log.Logger
}

func NewSender() *Sender {
	return &Sender{logger: log.Default()}
}

func NewSenderWithLogger(logger *log.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event domain.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Printf("Sending email to: %s (%s for booking %s, department %s)", event.Email, event.Type, event.BookingID, event.Department)
	return nil
}

// Notify lets the sender be used directly as the service's notifier when no
// message bus is configured.
func (s *Sender) Notify(ctx context.Context, event domain.BookingEvent) error {
	return s.Send(ctx, event)
}
