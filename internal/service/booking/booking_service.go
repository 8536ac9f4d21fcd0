package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/bookingservice/internal/domain"
	"github.com/Domenick1991/bookingservice/internal/repository"
	"github.com/shopspring/decimal"
)

// NotFoundMessage is returned by DoBusiness for an unknown booking.
const NotFoundMessage = "Booking not found"

const defaultNotifyTimeout = 5 * time.Second

type BookingUseCase interface {
	CreateBooking(ctx context.Context, booking domain.Booking) error
	UpdateBooking(ctx context.Context, id string, booking domain.Booking) error
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListByDepartment(ctx context.Context, department string) ([]string, error)
	ListCurrencies(ctx context.Context) ([]string, error)
	SumByCurrency(ctx context.Context, currency string) (decimal.Decimal, error)
	DoBusiness(ctx context.Context, id string) (string, error)
}

// Notifier delivers booking events to the outside world (email, message bus).
type Notifier interface {
	Notify(ctx context.Context, event domain.BookingEvent) error
}

type BookingService struct {
	bookings         repository.BookingRepository
	notifier         Notifier
	notifyTimeout    time.Duration
	rejectDuplicates bool

	inflight sync.WaitGroup
}

type BookingServiceOption func(*BookingService)

func WithNotifier(n Notifier) BookingServiceOption {
	return func(s *BookingService) {
		s.notifier = n
	}
}

func WithNotifyTimeout(d time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

// WithRejectDuplicates turns CreateBooking into a strict insert.
func WithRejectDuplicates(reject bool) BookingServiceOption {
	return func(s *BookingService) {
		s.rejectDuplicates = reject
	}
}

func NewBookingService(bookings repository.BookingRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:      bookings,
		notifyTimeout: defaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, booking domain.Booking) error {
	var err error
	if s.rejectDuplicates {
		err = s.bookings.Insert(ctx, booking)
	} else {
		err = s.bookings.Save(ctx, booking.ID, booking)
	}
	if err != nil {
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	s.notify(ctx, domain.NewBookingEvent(domain.EventBookingCreated, booking))
	return nil
}

// UpdateBooking replaces whatever is stored under id, creating it if absent.
// The payload's own ID is not required to match id.
func (s *BookingService) UpdateBooking(ctx context.Context, id string, booking domain.Booking) error {
	if err := s.bookings.Save(ctx, id, booking); err != nil {
		return fmt.Errorf("update booking %s: %w", id, err)
	}
	return nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListByDepartment(ctx context.Context, department string) ([]string, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	for _, b := range all {
		if strings.EqualFold(b.Department, department) {
			ids = append(ids, b.ID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// ListCurrencies returns distinct currency codes as stored, without case folding.
func (s *BookingService) ListCurrencies(ctx context.Context) ([]string, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(all))
	currencies := make([]string, 0)
	for _, b := range all {
		if _, ok := seen[b.Currency]; ok {
			continue
		}
		seen[b.Currency] = struct{}{}
		currencies = append(currencies, b.Currency)
	}
	slices.Sort(currencies)
	return currencies, nil
}

func (s *BookingService) SumByCurrency(ctx context.Context, currency string) (decimal.Decimal, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, b := range all {
		if strings.EqualFold(b.Currency, currency) {
			sum = sum.Add(b.Price)
		}
	}
	return sum, nil
}

func (s *BookingService) DoBusiness(ctx context.Context, id string) (string, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, domain.ErrBookingNotFound) {
		return NotFoundMessage, nil
	}
	if err != nil {
		return "", err
	}
	return domain.ParseDepartment(b.Department).BusinessMessage(), nil
}

// Close waits for notifications that are still being delivered.
func (s *BookingService) Close() {
	s.inflight.Wait()
}

// notify hands the event to the notifier in the background. Failures are only logged.
func (s *BookingService) notify(ctx context.Context, event domain.BookingEvent) {
	if s.notifier == nil {
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("WARNING: notifier panicked for booking %s: %v", event.BookingID, r)
			}
		}()

		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(notifyCtx, event); err != nil {
			log.Printf("WARNING: Failed to send %s notification for booking %s: %v", event.Type, event.BookingID, err)
		}
	}()
}

var _ BookingUseCase = (*BookingService)(nil)
