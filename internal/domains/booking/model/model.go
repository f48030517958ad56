package model

import (
	"pms/shared/model"
	"pms/shared/timezone"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	CachePrefix = "booking"

	FieldID                 = "id"
	FieldPropertyID         = "property_id"
	FieldPackageID          = "package_id"
	FieldBookingType        = "booking_type"
	FieldBookingStatus      = "booking_status"
	FieldBookingDate        = "booking_date"
	FieldEstimatedArrival   = "estimated_arrival"
	FieldEstimatedDeparture = "estimated_departure"
	FieldActualArrival      = "actual_arrival"
	FieldActualDeparture    = "actual_departure"
	FieldAdultCount         = "adult_count"
	FieldChildCount         = "child_count"
	FieldTotalGuest         = "total_guest"
	FieldDiscountType       = "discount_type"
	FieldDiscountValue      = "discount_value"
	FieldPriceBeforeTax     = "price_before_tax"
	FieldDiscountAmount     = "discount_amount"
	FieldPriceAfterDiscount = "price_after_discount"
	FieldGSTAmount          = "gst_amount"
	FieldRoomTaxAmount      = "room_tax_amount"
	FieldFinalAmount        = "final_amount"
	FieldCancellationFee    = "cancellation_fee"
	FieldIsNoShow           = "is_no_show"
	FieldIsActive           = "is_active"
	FieldComments           = "comments"
	FieldIDProofURL         = "id_proof_url"
	FieldGuestName          = "guest_name"
)

type Status string

const (
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

// ClaimingStatuses hold their rooms for the booked range.
var ClaimingStatuses = []Status{StatusConfirmed, StatusCheckedIn, StatusNoShow}

// IsTerminal reports whether no further lifecycle change is accepted.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCheckedOut
}

func (s Status) ClaimsRooms() bool {
	return slices.Contains(ClaimingStatuses, s)
}

type Booking struct {
	ID                 string          `db:"id"`
	PropertyID         string          `db:"property_id"`
	PackageID          *string         `db:"package_id"`
	BookingType        string          `db:"booking_type"`
	BookingStatus      Status          `db:"booking_status"`
	BookingDate        time.Time       `db:"booking_date"`
	GuestName          string          `db:"guest_name"`
	GuestPhone         *string         `db:"guest_phone"`
	GuestEmail         *string         `db:"guest_email"`
	EstimatedArrival   time.Time       `db:"estimated_arrival"`
	EstimatedDeparture time.Time       `db:"estimated_departure"`
	ActualArrival      *time.Time      `db:"actual_arrival"`
	ActualDeparture    *time.Time      `db:"actual_departure"`
	AdultCount         int             `db:"adult_count"`
	ChildCount         int             `db:"child_count"`
	TotalGuest         int             `db:"total_guest"`
	DiscountType       *string         `db:"discount_type"`
	DiscountValue      decimal.Decimal `db:"discount_value"`
	PriceBeforeTax     decimal.Decimal `db:"price_before_tax"`
	DiscountAmount     decimal.Decimal `db:"discount_amount"`
	PriceAfterDiscount decimal.Decimal `db:"price_after_discount"`
	GSTAmount          decimal.Decimal `db:"gst_amount"`
	RoomTaxAmount      decimal.Decimal `db:"room_tax_amount"`
	FinalAmount        decimal.Decimal `db:"final_amount"`
	CancellationFee    decimal.Decimal `db:"cancellation_fee"`
	IsNoShow           bool            `db:"is_no_show"`
	IsActive           bool            `db:"is_active"`
	Comments           *string         `db:"comments"`
	PickUp             bool            `db:"pick_up"`
	Drop               bool            `db:"drop_off"`
	IDProofURL         *string         `db:"id_proof_url"`
	model.Metadata
}

// EffectiveDeparture is the recorded departure, or the planned one while the
// guest has not left.
func (b Booking) EffectiveDeparture() time.Time {
	if b.ActualDeparture != nil {
		return *b.ActualDeparture
	}

	return b.EstimatedDeparture
}

// Nights counts calendar days between the planned arrival and departure dates.
func (b Booking) Nights() int {
	return timezone.CalendarDays(b.EstimatedArrival, b.EstimatedDeparture)
}

func (b Booking) Pricing() Pricing {
	return Pricing{
		PriceBeforeTax:     b.PriceBeforeTax,
		DiscountAmount:     b.DiscountAmount,
		PriceAfterDiscount: b.PriceAfterDiscount,
		GSTAmount:          b.GSTAmount,
		RoomTaxAmount:      b.RoomTaxAmount,
		FinalAmount:        b.FinalAmount,
	}
}

func (b *Booking) SetPricing(p Pricing) {
	b.PriceBeforeTax = p.PriceBeforeTax
	b.DiscountAmount = p.DiscountAmount
	b.PriceAfterDiscount = p.PriceAfterDiscount
	b.GSTAmount = p.GSTAmount
	b.RoomTaxAmount = p.RoomTaxAmount
	b.FinalAmount = p.FinalAmount
}
