package model_test

import (
	"pms/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   model.Status
		terminal bool
		claims   bool
	}{
		{status: model.StatusConfirmed, claims: true},
		{status: model.StatusCheckedIn, claims: true},
		{status: model.StatusNoShow, claims: true},
		{status: model.StatusCheckedOut, terminal: true},
		{status: model.StatusCancelled, terminal: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.claims, tt.status.ClaimsRooms())
		})
	}
}

func TestBooking_Nights(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name      string
		arrival   time.Time
		departure time.Time
		expected  int
	}{
		{
			name:      "four nights",
			arrival:   time.Date(2024, 6, 1, 14, 0, 0, 0, loc),
			departure: time.Date(2024, 6, 5, 11, 0, 0, 0, loc),
			expected:  4,
		},
		{
			name:      "same day",
			arrival:   time.Date(2024, 6, 1, 9, 0, 0, 0, loc),
			departure: time.Date(2024, 6, 1, 18, 0, 0, 0, loc),
			expected:  0,
		},
		{
			name:      "departure in another zone",
			arrival:   time.Date(2024, 6, 1, 23, 0, 0, 0, loc),
			departure: time.Date(2024, 6, 2, 0, 30, 0, 0, time.UTC),
			expected:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{EstimatedArrival: tt.arrival, EstimatedDeparture: tt.departure}
			assert.Equal(t, tt.expected, booking.Nights())
		})
	}
}

func TestBooking_EffectiveDeparture(t *testing.T) {
	planned := time.Date(2024, 6, 5, 11, 0, 0, 0, time.UTC)
	booking := model.Booking{EstimatedDeparture: planned}

	assert.Equal(t, planned, booking.EffectiveDeparture())

	left := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	booking.ActualDeparture = &left

	assert.Equal(t, left, booking.EffectiveDeparture())
}

func TestNewPricing(t *testing.T) {
	t.Run("derived price after discount", func(t *testing.T) {
		p := model.NewPricing(dec("10000"), dec("1500"), nil, dec("1020"), dec("150.50"))

		assert.True(t, p.PriceAfterDiscount.Equal(dec("8500")))
		assert.True(t, p.FinalAmount.Equal(dec("9670.50")))
	})

	t.Run("explicit price after discount", func(t *testing.T) {
		after := dec("8000")
		p := model.NewPricing(dec("10000"), dec("1500"), &after, dec("960"), dec("0"))

		assert.True(t, p.PriceAfterDiscount.Equal(after))
		assert.True(t, p.FinalAmount.Equal(dec("8960")))
	})

	t.Run("final amount recomputed after settle", func(t *testing.T) {
		p := model.Pricing{PriceAfterDiscount: dec("99.99"), GSTAmount: dec("0.01"), RoomTaxAmount: dec("5"), FinalAmount: dec("1")}.Settle()

		assert.True(t, p.FinalAmount.Equal(p.PriceAfterDiscount.Add(p.GSTAmount).Add(p.RoomTaxAmount)))
	})
}

func TestPricing_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pricing model.Pricing
		wantErr error
	}{
		{name: "whole amounts", pricing: model.NewPricing(dec("100"), dec("0"), nil, dec("18"), dec("0"))},
		{name: "cents", pricing: model.NewPricing(dec("100.50"), dec("0.25"), nil, dec("18.09"), dec("0.01"))},
		{name: "trailing zeros beyond cents", pricing: model.NewPricing(dec("100.500"), dec("0"), nil, dec("0"), dec("0"))},
		{name: "discount above price", pricing: model.NewPricing(dec("100"), dec("150"), nil, dec("0"), dec("0")), wantErr: model.ErrNegativeAmount},
		{name: "sub-cent tax", pricing: model.NewPricing(dec("100.004"), dec("0"), nil, dec("0.004"), dec("0.004")), wantErr: model.ErrAmountPrecision},
		{name: "sub-cent discount", pricing: model.NewPricing(dec("100"), dec("0.005"), nil, dec("0"), dec("0")), wantErr: model.ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pricing.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	assert.True(t, model.DiscountAmount(model.DiscountTypePercentage, dec("12.5"), dec("4999")).Equal(dec("624.88")))
	assert.True(t, model.DiscountAmount(model.DiscountTypeFlat, dec("300"), dec("4999")).Equal(dec("300")))
	assert.True(t, model.DiscountAmount("", dec("300"), dec("4999")).IsZero())
}
