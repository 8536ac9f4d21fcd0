package booking

import (
	"sync"

	"github.com/Domenick1991/bookingservice/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// BookingInput is the wire shape of a booking before validation. Pointer fields
// let a missing price or date be told apart from a zero one.
type BookingInput struct {
	ID                    string           `json:"bookingId" binding:"notblank"`
	Description           string           `json:"description"`
	Price                 *decimal.Decimal `json:"price" binding:"required"`
	Currency              string           `json:"currency" binding:"notblank"`
	SubscriptionStartDate *domain.Date     `json:"subscriptionStartDate" binding:"required"`
	Email                 string           `json:"email" binding:"notblank,email"`
	Department            string           `json:"department" binding:"notblank"`
}

func (in BookingInput) ToBooking() domain.Booking {
	b := domain.Booking{
		ID:          in.ID,
		Description: in.Description,
		Currency:    in.Currency,
		Email:       in.Email,
		Department:  in.Department,
	}
	if in.Price != nil {
		b.Price = *in.Price
	}
	if in.SubscriptionStartDate != nil {
		b.SubscriptionStartDate = *in.SubscriptionStartDate
	}
	return b
}

func FromBooking(b domain.Booking) BookingInput {
	price := b.Price
	date := b.SubscriptionStartDate
	return BookingInput{
		ID:                    b.ID,
		Description:           b.Description,
		Price:                 &price,
		Currency:              b.Currency,
		SubscriptionStartDate: &date,
		Email:                 b.Email,
		Department:            b.Department,
	}
}

// Price bounds. A decimal with an unbounded exponent is cheap to send but
// expands to one digit per unit of exponent when summed or printed.
const (
	MaxPriceDigits = 38
	MaxPriceScale  = 18
)

// PriceInRange reports whether p has at most MaxPriceDigits significant digits,
// at most MaxPriceScale fractional digits and at most MaxPriceDigits integer digits.
func PriceInRange(p decimal.Decimal) bool {
	digits := p.NumDigits()
	exp := int64(p.Exponent())
	return digits <= MaxPriceDigits &&
		exp >= -MaxPriceScale &&
		int64(digits)+exp <= MaxPriceDigits
}

// RegisterValidations adds the custom tags and struct rules BookingInput relies on.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	v.RegisterStructValidation(validatePrice, BookingInput{})
	return nil
}

func validatePrice(sl validator.StructLevel) {
	var price *decimal.Decimal
	switch in := sl.Current().Interface().(type) {
	case BookingInput:
		price = in.Price
	case *BookingInput:
		price = in.Price
	}
	if price == nil {
		return
	}
	if !PriceInRange(*price) {
		sl.ReportError(price, "Price", "price", "price_range", "")
	}
}

var (
	inputValidator     *validator.Validate
	inputValidatorOnce sync.Once
)

// ValidateInput checks the binding tags of in for callers that do not go
// through gin's binding (e.g. the gRPC transport).
func ValidateInput(in BookingInput) error {
	inputValidatorOnce.Do(func() {
		v := validator.New()
		v.SetTagName("binding")
		if err := RegisterValidations(v); err != nil {
			panic(err)
		}
		inputValidator = v
	})
	return inputValidator.Struct(in)
}
