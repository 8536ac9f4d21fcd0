package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDepartment(t *testing.T) {
	testCases := []struct {
		in   string
		want Department
	}{
		{"sales", DepartmentSales},
		{"SALES", DepartmentSales},
		{"Marketing", DepartmentMarketing},
		{"fInAnCe", DepartmentFinance},
		{"engineering", DepartmentOther},
		{"", DepartmentOther},
		{" sales", DepartmentOther},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDepartment(tc.in))
		})
	}
}

func TestDepartment_BusinessMessage(t *testing.T) {
	assert.Equal(t, "Performing sales business logic", DepartmentSales.BusinessMessage())
	assert.Equal(t, "Performing marketing business logic", DepartmentMarketing.BusinessMessage())
	assert.Equal(t, "Performing finance business logic", DepartmentFinance.BusinessMessage())
	assert.Equal(t, "Performing generic business logic", DepartmentOther.BusinessMessage())
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-01-31"`), &d))
	assert.Equal(t, NewDate(2023, time.January, 31), d)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-01-31"`, string(out))
}

func TestDate_InvalidJSON(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"2023-02-30"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"01/02/2023"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20230101`), &d))
	assert.True(t, d.IsZero())
}

func TestBooking_JSONFieldNames(t *testing.T) {
	payload := `{
		"bookingId": "1",
		"description": "Test booking",
		"price": 100.10,
		"currency": "USD",
		"subscriptionStartDate": "2023-01-01",
		"email": "test@example.com",
		"department": "sales"
	}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(payload), &b))

	assert.Equal(t, "1", b.ID)
	assert.True(t, decimal.RequireFromString("100.1").Equal(b.Price))
	assert.Equal(t, NewDate(2023, time.January, 1), b.SubscriptionStartDate)
	assert.Equal(t, "sales", b.Department)
}

func TestNewBookingEvent(t *testing.T) {
	b := Booking{ID: "7", Email: "a@b.c", Department: "finance"}

	first := NewBookingEvent(EventBookingCreated, b)
	second := NewBookingEvent(EventBookingCreated, b)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "7", first.BookingID)
	assert.Equal(t, "a@b.c", first.Email)
	assert.Equal(t, EventBookingCreated, first.Type)
	assert.False(t, first.OccurredAt.IsZero())
}
