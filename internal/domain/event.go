package domain

import (
	"time"

	"github.com/google/uuid"
)

const EventBookingCreated = "booking_created"

// BookingEvent is what gets published to the notifications channel.
type BookingEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b Booking) BookingEvent {
	return BookingEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  b.ID,
		Email:      b.Email,
		Department: b.Department,
		OccurredAt: time.Now().UTC(),
	}
}
