package repository

import (
	"context"
	"sync"

	"github.com/Domenick1991/bookingservice/internal/domain"
)

type BookingRepository interface {
	// Save inserts or replaces the booking stored under id.
	Save(ctx context.Context, id string, booking domain.Booking) error
	// Insert stores the booking under its own ID and fails with
	// domain.ErrBookingExists if that ID is taken.
	Insert(ctx context.Context, booking domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

// MemoryBookingRepository keeps bookings in a map for the lifetime of the process.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

func NewBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]domain.Booking)}
}

func (r *MemoryBookingRepository) Save(ctx context.Context, id string, booking domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[id] = booking
	return nil
}

func (r *MemoryBookingRepository) Insert(ctx context.Context, booking domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[booking.ID]; ok {
		return domain.ErrBookingExists
	}
	r.bookings[booking.ID] = booking
	return nil
}

func (r *MemoryBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

// List returns a snapshot of every stored booking in no particular order.
func (r *MemoryBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
