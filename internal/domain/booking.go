package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingExists   = errors.New("booking already exists")
)

// Booking is a subscription commitment keyed by ID.
type Booking struct {
	ID                    string          `json:"bookingId"`
	Description           string          `json:"description"`
	Price                 decimal.Decimal `json:"price"`
	Currency              string          `json:"currency"`
	SubscriptionStartDate Date            `json:"subscriptionStartDate"`
	Email                 string          `json:"email"`
	Department            string          `json:"department"`
}
