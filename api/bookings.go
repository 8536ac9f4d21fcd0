package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/Domenick1991/bookingservice/internal/domain"
	"github.com/Domenick1991/bookingservice/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingResponse struct {
	BookingID             string      `json:"bookingId"`
	Description           string      `json:"description"`
	Price                 json.Number `json:"price"`
	Currency              string      `json:"currency"`
	SubscriptionStartDate domain.Date `json:"subscriptionStartDate"`
	Email                 string      `json:"email"`
	Department            string      `json:"department"`
}

var registerValidations sync.Once

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	registerValidations.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := booking.RegisterValidations(v); err != nil {
			log.Printf("register validations: %v", err)
		}
	})
	return &BookingHandler{service: service}
}

// Register mounts the booking routes under router, normally the /bookingservice group.
func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.PUT("/bookings/:id", h.update)
	router.GET("/bookings/:id", h.get)
	router.GET("/bookings/department/:department", h.listByDepartment)
	router.GET("/bookings/currencies", h.listCurrencies)
	router.GET("/bookings/dobusiness/:id", h.doBusiness)
	router.GET("/sum/:currency", h.sumByCurrency)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.BookingInput
	if !bindInput(c, &req) {
		return
	}

	if err := h.service.CreateBooking(c.Request.Context(), req.ToBooking()); err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusCreated, "Booking created")
}

func (h *BookingHandler) update(c *gin.Context) {
	var req booking.BookingInput
	if !bindInput(c, &req) {
		return
	}

	if err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), req.ToBooking()); err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, "Booking updated")
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) listByDepartment(c *gin.Context) {
	ids, err := h.service.ListByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *BookingHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.service.ListCurrencies(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, currencies)
}

func (h *BookingHandler) sumByCurrency(c *gin.Context) {
	sum, err := h.service.SumByCurrency(c.Request.Context(), c.Param("currency"))
	if err != nil {
		writeError(c, err)
		return
	}
	// bare JSON number, never a float
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(sum.String()))
}

func (h *BookingHandler) doBusiness(c *gin.Context) {
	msg, err := h.service.DoBusiness(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}

func bindInput(c *gin.Context, req *booking.BookingInput) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrBookingExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("booking request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		BookingID:             b.ID,
		Description:           b.Description,
		Price:                 json.Number(b.Price.String()),
		Currency:              b.Currency,
		SubscriptionStartDate: b.SubscriptionStartDate,
		Email:                 b.Email,
		Department:            b.Department,
	}
}
