package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount  = errors.New("price components cannot be negative")
	ErrAmountPrecision = errors.New("price components cannot have more than 2 decimal places")
)

// Pricing is the price breakdown of a booking.
// FinalAmount is always PriceAfterDiscount + GSTAmount + RoomTaxAmount.
type Pricing struct {
	PriceBeforeTax     decimal.Decimal
	DiscountAmount     decimal.Decimal
	PriceAfterDiscount decimal.Decimal
	GSTAmount          decimal.Decimal
	RoomTaxAmount      decimal.Decimal
	FinalAmount        decimal.Decimal
}

// NewPricing builds a breakdown. A nil afterDiscount is derived as
// priceBeforeTax - discount.
func NewPricing(priceBeforeTax, discount decimal.Decimal, afterDiscount *decimal.Decimal, gst, roomTax decimal.Decimal) Pricing {
	p := Pricing{
		PriceBeforeTax: priceBeforeTax,
		DiscountAmount: discount,
		GSTAmount:      gst,
		RoomTaxAmount:  roomTax,
	}

	if afterDiscount != nil {
		p.PriceAfterDiscount = *afterDiscount
	} else {
		p.PriceAfterDiscount = priceBeforeTax.Sub(discount)
	}

	return p.Settle()
}

// Settle recomputes FinalAmount from its components.
func (p Pricing) Settle() Pricing {
	p.FinalAmount = p.PriceAfterDiscount.Add(p.GSTAmount).Add(p.RoomTaxAmount)

	return p
}

// Validate rejects negative components and components finer than a cent.
func (p Pricing) Validate() error {
	for _, amount := range []decimal.Decimal{p.PriceBeforeTax, p.DiscountAmount, p.PriceAfterDiscount, p.GSTAmount, p.RoomTaxAmount} {
		if amount.IsNegative() {
			return ErrNegativeAmount
		}

		if !amount.Equal(amount.Round(amountPlaces)) {
			return ErrAmountPrecision
		}
	}

	return nil
}

const (
	DiscountTypePercentage = "PERCENTAGE"
	DiscountTypeFlat       = "FLAT"

	amountPlaces = 2
)

var hundred = decimal.NewFromInt(100)

// DiscountAmount resolves a discount rule against the pre-tax price. Unknown
// rule types give no discount.
func DiscountAmount(discountType string, value, priceBeforeTax decimal.Decimal) decimal.Decimal {
	switch discountType {
	case DiscountTypePercentage:
		return priceBeforeTax.Mul(value).Div(hundred).Round(amountPlaces)
	case DiscountTypeFlat:
		return value
	default:
		return decimal.Zero
	}
}
