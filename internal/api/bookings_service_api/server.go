package bookings_service_api

import (
	"context"
	"errors"

	"github.com/Domenick1991/bookingservice/internal/domain"
	"github.com/Domenick1991/bookingservice/internal/service/booking"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements BookingsServiceServer on top of the booking use case.
type Server struct {
	bookings booking.BookingUseCase
}

func NewServer(bookings booking.BookingUseCase) *Server {
	return &Server{bookings: bookings}
}

func (s *Server) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*MessageResponse, error) {
	if err := booking.ValidateInput(req.Booking); err != nil {
		return nil, toStatus(err)
	}
	if err := s.bookings.CreateBooking(ctx, req.Booking.ToBooking()); err != nil {
		return nil, toStatus(err)
	}
	return &MessageResponse{Message: "Booking created"}, nil
}

func (s *Server) UpdateBooking(ctx context.Context, req *UpdateBookingRequest) (*MessageResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if err := booking.ValidateInput(req.Booking); err != nil {
		return nil, toStatus(err)
	}
	if err := s.bookings.UpdateBooking(ctx, req.ID, req.Booking.ToBooking()); err != nil {
		return nil, toStatus(err)
	}
	return &MessageResponse{Message: "Booking updated"}, nil
}

func (s *Server) GetBooking(ctx context.Context, req *BookingIDRequest) (*BookingResponse, error) {
	b, err := s.bookings.GetBooking(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &BookingResponse{Booking: booking.FromBooking(*b)}, nil
}

func (s *Server) ListByDepartment(ctx context.Context, req *DepartmentRequest) (*IDsResponse, error) {
	ids, err := s.bookings.ListByDepartment(ctx, req.Department)
	if err != nil {
		return nil, toStatus(err)
	}
	return &IDsResponse{IDs: ids}, nil
}

func (s *Server) ListCurrencies(ctx context.Context, _ *Empty) (*CurrenciesResponse, error) {
	currencies, err := s.bookings.ListCurrencies(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &CurrenciesResponse{Currencies: currencies}, nil
}

func (s *Server) SumByCurrency(ctx context.Context, req *CurrencyRequest) (*SumResponse, error) {
	sum, err := s.bookings.SumByCurrency(ctx, req.Currency)
	if err != nil {
		return nil, toStatus(err)
	}
	return &SumResponse{Sum: sum}, nil
}

func (s *Server) DoBusiness(ctx context.Context, req *BookingIDRequest) (*MessageResponse, error) {
	msg, err := s.bookings.DoBusiness(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &MessageResponse{Message: msg}, nil
}

func toStatus(err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrBookingNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrBookingExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var _ BookingsServiceServer = (*Server)(nil)
