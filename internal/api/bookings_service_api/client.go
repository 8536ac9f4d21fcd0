package bookings_service_api

import (
	"context"

	"github.com/Domenick1991/bookingservice/internal/service/booking"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

// Client calls BookingService over a connection using the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	return c.cc.Invoke(ctx, fullMethod(method), in, out, grpc.CallContentSubtype(CodecName))
}

func (c *Client) CreateBooking(ctx context.Context, in booking.BookingInput) (string, error) {
	out := new(MessageResponse)
	if err := c.invoke(ctx, "CreateBooking", &CreateBookingRequest{Booking: in}, out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, in booking.BookingInput) (string, error) {
	out := new(MessageResponse)
	if err := c.invoke(ctx, "UpdateBooking", &UpdateBookingRequest{ID: id, Booking: in}, out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (booking.BookingInput, error) {
	out := new(BookingResponse)
	if err := c.invoke(ctx, "GetBooking", &BookingIDRequest{ID: id}, out); err != nil {
		return booking.BookingInput{}, err
	}
	return out.Booking, nil
}

func (c *Client) ListByDepartment(ctx context.Context, department string) ([]string, error) {
	out := new(IDsResponse)
	if err := c.invoke(ctx, "ListByDepartment", &DepartmentRequest{Department: department}, out); err != nil {
		return nil, err
	}
	return out.IDs, nil
}

func (c *Client) ListCurrencies(ctx context.Context) ([]string, error) {
	out := new(CurrenciesResponse)
	if err := c.invoke(ctx, "ListCurrencies", &Empty{}, out); err != nil {
		return nil, err
	}
	return out.Currencies, nil
}

func (c *Client) SumByCurrency(ctx context.Context, currency string) (decimal.Decimal, error) {
	out := new(SumResponse)
	if err := c.invoke(ctx, "SumByCurrency", &CurrencyRequest{Currency: currency}, out); err != nil {
		return decimal.Zero, err
	}
	return out.Sum, nil
}

func (c *Client) DoBusiness(ctx context.Context, id string) (string, error) {
	out := new(MessageResponse)
	if err := c.invoke(ctx, "DoBusiness", &BookingIDRequest{ID: id}, out); err != nil {
		return "", err
	}
	return out.Message, nil
}
