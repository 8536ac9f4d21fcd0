package bookings_service_api

import (
	"context"

	"github.com/Domenick1991/bookingservice/internal/service/booking"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

const ServiceName = "bookingservice.v1.BookingService"

type CreateBookingRequest struct {
	Booking booking.BookingInput `json:"booking"`
}

type UpdateBookingRequest struct {
	ID      string               `json:"id"`
	Booking booking.BookingInput `json:"booking"`
}

type BookingIDRequest struct {
	ID string `json:"id"`
}

type DepartmentRequest struct {
	Department string `json:"department"`
}

type CurrencyRequest struct {
	Currency string `json:"currency"`
}

type Empty struct{}

type MessageResponse struct {
	Message string `json:"message"`
}

type BookingResponse struct {
	Booking booking.BookingInput `json:"booking"`
}

type IDsResponse struct {
	IDs []string `json:"ids"`
}

type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

type SumResponse struct {
	Sum decimal.Decimal `json:"sum"`
}

type BookingsServiceServer interface {
	CreateBooking(context.Context, *CreateBookingRequest) (*MessageResponse, error)
	UpdateBooking(context.Context, *UpdateBookingRequest) (*MessageResponse, error)
	GetBooking(context.Context, *BookingIDRequest) (*BookingResponse, error)
	ListByDepartment(context.Context, *DepartmentRequest) (*IDsResponse, error)
	ListCurrencies(context.Context, *Empty) (*CurrenciesResponse, error)
	SumByCurrency(context.Context, *CurrencyRequest) (*SumResponse, error)
	DoBusiness(context.Context, *BookingIDRequest) (*MessageResponse, error)
}

func RegisterBookingsServiceServer(s grpc.ServiceRegistrar, srv BookingsServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateBooking", Handler: unaryHandler("CreateBooking", BookingsServiceServer.CreateBooking)},
		{MethodName: "UpdateBooking", Handler: unaryHandler("UpdateBooking", BookingsServiceServer.UpdateBooking)},
		{MethodName: "GetBooking", Handler: unaryHandler("GetBooking", BookingsServiceServer.GetBooking)},
		{MethodName: "ListByDepartment", Handler: unaryHandler("ListByDepartment", BookingsServiceServer.ListByDepartment)},
		{MethodName: "ListCurrencies", Handler: unaryHandler("ListCurrencies", BookingsServiceServer.ListCurrencies)},
		{MethodName: "SumByCurrency", Handler: unaryHandler("SumByCurrency", BookingsServiceServer.SumByCurrency)},
		{MethodName: "DoBusiness", Handler: unaryHandler("DoBusiness", BookingsServiceServer.DoBusiness)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bookingservice/v1/booking_service",
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryHandler adapts a typed server method to grpc.MethodHandler, decoding the
// request with the connection's codec and honouring interceptors.
func unaryHandler[Req, Resp any](method string, call func(BookingsServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BookingsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BookingsServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
