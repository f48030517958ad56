package dto

import (
	"mime/multipart"
	"pms/internal/domains/booking/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	PropertyID         string           `json:"property_id"          validate:"required,uuid"`
	PackageID          *string          `json:"package_id"           validate:"omitempty,uuid"`
	BookingType        string           `json:"booking_type"         validate:"required,oneof=WALK_IN PHONE ONLINE OTA CORPORATE"`
	BookingStatus      model.Status     `json:"booking_status"       validate:"omitempty,oneof=CONFIRMED CHECKED_IN"`
	GuestName          string           `json:"guest_name"           validate:"required,max=100"`
	GuestPhone         *string          `json:"guest_phone"          validate:"omitempty,max=20"`
	GuestEmail         *string          `json:"guest_email"          validate:"omitempty,email,max=100"`
	EstimatedArrival   time.Time        `json:"estimated_arrival"    validate:"required"`
	EstimatedDeparture time.Time        `json:"estimated_departure"  validate:"required,gtfield=EstimatedArrival"`
	AdultCount         int              `json:"adult_count"          validate:"gte=1"`
	ChildCount         int              `json:"child_count"          validate:"gte=0"`
	RoomIDs            []string         `json:"room_ids"             validate:"required,min=1,unique,dive,uuid"`
	DiscountType       *string          `json:"discount_type"        validate:"omitempty,oneof=PERCENTAGE FLAT"`
	DiscountValue      decimal.Decimal  `json:"discount_value"       swaggertype:"string" validate:"gte=0"`
	PriceBeforeTax     decimal.Decimal  `json:"price_before_tax"     swaggertype:"string" validate:"gte=0"`
	DiscountAmount     *decimal.Decimal `json:"discount_amount"      swaggertype:"string" validate:"omitempty,gte=0"`
	PriceAfterDiscount *decimal.Decimal `json:"price_after_discount" swaggertype:"string" validate:"omitempty,gte=0"`
	GSTAmount          decimal.Decimal  `json:"gst_amount"           swaggertype:"string" validate:"gte=0"`
	RoomTaxAmount      decimal.Decimal  `json:"room_tax_amount"      swaggertype:"string" validate:"gte=0"`
	Comments           *string          `json:"comments"             validate:"omitempty,max=500"`
	PickUp             bool             `json:"pick_up"`
	Drop               bool             `json:"drop"`
}

func (r *CreateBookingRequest) Status() model.Status {
	if r.BookingStatus == "" {
		return model.StatusConfirmed
	}

	return r.BookingStatus
}

func (r *CreateBookingRequest) Pricing() model.Pricing {
	discount := decimal.Zero

	switch {
	case r.DiscountAmount != nil:
		discount = *r.DiscountAmount
	case r.DiscountType != nil:
		discount = model.DiscountAmount(*r.DiscountType, r.DiscountValue, r.PriceBeforeTax)
	}

	return model.NewPricing(r.PriceBeforeTax, discount, r.PriceAfterDiscount, r.GSTAmount, r.RoomTaxAmount)
}

func (r *CreateBookingRequest) ToModel(user string) model.Booking {
	now := timezone.Now()

	booking := model.Booking{
		ID:                 uuid.NewString(),
		PropertyID:         r.PropertyID,
		PackageID:          r.PackageID,
		BookingType:        r.BookingType,
		BookingStatus:      r.Status(),
		BookingDate:        now,
		GuestName:          r.GuestName,
		GuestPhone:         r.GuestPhone,
		GuestEmail:         r.GuestEmail,
		EstimatedArrival:   r.EstimatedArrival,
		EstimatedDeparture: r.EstimatedDeparture,
		AdultCount:         r.AdultCount,
		ChildCount:         r.ChildCount,
		TotalGuest:         r.AdultCount + r.ChildCount,
		DiscountType:       r.DiscountType,
		DiscountValue:      r.DiscountValue,
		CancellationFee:    decimal.Zero,
		IsActive:           true,
		Comments:           r.Comments,
		PickUp:             r.PickUp,
		Drop:               r.Drop,
		Metadata: gModel.Metadata{
			CreatedOn: now,
			CreatedBy: user,
			UpdatedOn: now,
			UpdatedBy: user,
		},
	}
	booking.SetPricing(r.Pricing())

	if booking.BookingStatus == model.StatusCheckedIn {
		booking.ActualArrival = &now
	}

	return booking
}

// NewRoomDetail snapshots the room type label at reservation time.
func NewRoomDetail(bookingID, roomID, roomType, roomStatus, user string) model.RoomDetail {
	now := timezone.Now()

	return model.RoomDetail{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		RoomID:     roomID,
		RoomType:   roomType,
		RoomStatus: roomStatus,
		Metadata: gModel.Metadata{
			CreatedOn: now,
			CreatedBy: user,
			UpdatedOn: now,
			UpdatedBy: user,
		},
	}
}

type UpdateStatusRequest struct {
	Status          model.Status    `json:"status"           validate:"required,oneof=CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED NO_SHOW"`
	Comments        *string         `json:"comments"         validate:"omitempty,max=500"`
	CancellationFee decimal.Decimal `json:"cancellation_fee" swaggertype:"string" validate:"gte=0"`
}

type CancelBookingRequest struct {
	CancellationFee decimal.Decimal `json:"cancellation_fee" swaggertype:"string" validate:"gte=0"`
	Comments        *string         `json:"comments"         validate:"omitempty,max=500"`
}

type CancelRoomRequest struct {
	Comments *string `json:"comments" validate:"omitempty,max=500"`
}

// UpdateDetailsRequest is a partial update of the descriptive and pricing
// fields of a booking. Absent fields are left untouched, explicit nulls clear
// nullable columns.
type UpdateDetailsRequest struct {
	GuestName          gDto.Optional[string]          `db:"guest_name"           json:"guest_name"           validate:"omitnil,max=100"`
	GuestPhone         gDto.Optional[string]          `db:"guest_phone"          json:"guest_phone"          validate:"omitnil,max=20"`
	GuestEmail         gDto.Optional[string]          `db:"guest_email"          json:"guest_email"          validate:"omitnil,email,max=100"`
	Comments           gDto.Optional[string]          `db:"comments"             json:"comments"             validate:"omitnil,max=500"`
	PickUp             gDto.Optional[bool]            `db:"pick_up"              json:"pick_up"`
	Drop               gDto.Optional[bool]            `db:"drop_off"             json:"drop"`
	AdultCount         gDto.Optional[int]             `db:"adult_count"          json:"adult_count"          validate:"omitnil,gte=1"`
	ChildCount         gDto.Optional[int]             `db:"child_count"          json:"child_count"          validate:"omitnil,gte=0"`
	PriceBeforeTax     gDto.Optional[decimal.Decimal] `db:"price_before_tax"     json:"price_before_tax"     swaggertype:"string" validate:"omitnil,gte=0"`
	DiscountAmount     gDto.Optional[decimal.Decimal] `db:"discount_amount"      json:"discount_amount"      swaggertype:"string" validate:"omitnil,gte=0"`
	PriceAfterDiscount gDto.Optional[decimal.Decimal] `db:"price_after_discount" json:"price_after_discount" swaggertype:"string" validate:"omitnil,gte=0"`
	GSTAmount          gDto.Optional[decimal.Decimal] `db:"gst_amount"           json:"gst_amount"           swaggertype:"string" validate:"omitnil,gte=0"`
	RoomTaxAmount      gDto.Optional[decimal.Decimal] `db:"room_tax_amount"      json:"room_tax_amount"      swaggertype:"string" validate:"omitnil,gte=0"`
}

func (r *UpdateDetailsRequest) IsEmpty() bool {
	return !r.GuestName.Present() && !r.GuestPhone.Present() && !r.GuestEmail.Present() &&
		!r.Comments.Present() && !r.PickUp.Present() && !r.Drop.Present() &&
		!r.AdultCount.Present() && !r.ChildCount.Present() && !r.TouchesPricing()
}

// NullViolation returns the json name of the first non-nullable field sent as
// null, or an empty string.
func (r *UpdateDetailsRequest) NullViolation() string {
	fields := []struct {
		name   string
		field  interface{ Present() bool }
		isNull bool
	}{
		{"guest_name", r.GuestName, !r.GuestName.Valid},
		{"pick_up", r.PickUp, !r.PickUp.Valid},
		{"drop", r.Drop, !r.Drop.Valid},
		{"adult_count", r.AdultCount, !r.AdultCount.Valid},
		{"child_count", r.ChildCount, !r.ChildCount.Valid},
		{"price_before_tax", r.PriceBeforeTax, !r.PriceBeforeTax.Valid},
		{"discount_amount", r.DiscountAmount, !r.DiscountAmount.Valid},
		{"price_after_discount", r.PriceAfterDiscount, !r.PriceAfterDiscount.Valid},
		{"gst_amount", r.GSTAmount, !r.GSTAmount.Valid},
		{"room_tax_amount", r.RoomTaxAmount, !r.RoomTaxAmount.Valid},
	}

	for _, f := range fields {
		if f.field.Present() && f.isNull {
			return f.name
		}
	}

	return constant.Empty
}

func (r *UpdateDetailsRequest) TouchesPricing() bool {
	return r.PriceBeforeTax.Present() || r.DiscountAmount.Present() || r.PriceAfterDiscount.Present() ||
		r.GSTAmount.Present() || r.RoomTaxAmount.Present()
}

// ApplyPricing merges the pricing fields present in the request into the
// breakdown of current. A new pre-tax price re-resolves the stored discount
// rule unless discount_amount is sent. When the pre-tax price or the discount
// changes without an explicit price_after_discount, the latter is derived again.
func (r *UpdateDetailsRequest) ApplyPricing(current model.Booking) model.Pricing {
	p := current.Pricing()
	p.PriceBeforeTax = r.PriceBeforeTax.Or(p.PriceBeforeTax)
	p.GSTAmount = r.GSTAmount.Or(p.GSTAmount)
	p.RoomTaxAmount = r.RoomTaxAmount.Or(p.RoomTaxAmount)

	switch {
	case r.DiscountAmount.Present():
		p.DiscountAmount = r.DiscountAmount.Or(p.DiscountAmount)
	case r.PriceBeforeTax.Present() && current.DiscountType != nil:
		p.DiscountAmount = model.DiscountAmount(*current.DiscountType, current.DiscountValue, p.PriceBeforeTax)
	}

	switch {
	case r.PriceAfterDiscount.Present():
		p.PriceAfterDiscount = r.PriceAfterDiscount.Or(p.PriceAfterDiscount)
	case r.PriceBeforeTax.Present() || r.DiscountAmount.Present():
		p.PriceAfterDiscount = p.PriceBeforeTax.Sub(p.DiscountAmount)
	}

	return p.Settle()
}

// DropsDiscountRule reports whether an explicit discount_amount replaces the
// stored discount rule of current.
func (r *UpdateDetailsRequest) DropsDiscountRule(current model.Booking) bool {
	return r.DiscountAmount.Present() && current.DiscountType != nil
}

// Fields maps the request to column updates, recomputing the stored derived
// columns from the locked booking.
func (r *UpdateDetailsRequest) Fields(current model.Booking, user string) (map[string]any, model.Pricing) {
	fields := shared.TransformFields(*r, user)

	if r.AdultCount.Present() || r.ChildCount.Present() {
		fields[model.FieldTotalGuest] = r.AdultCount.Or(current.AdultCount) + r.ChildCount.Or(current.ChildCount)
	}

	pricing := current.Pricing()
	if r.TouchesPricing() {
		pricing = r.ApplyPricing(current)

		fields[model.FieldPriceBeforeTax] = pricing.PriceBeforeTax
		fields[model.FieldDiscountAmount] = pricing.DiscountAmount
		fields[model.FieldPriceAfterDiscount] = pricing.PriceAfterDiscount
		fields[model.FieldGSTAmount] = pricing.GSTAmount
		fields[model.FieldRoomTaxAmount] = pricing.RoomTaxAmount
		fields[model.FieldFinalAmount] = pricing.FinalAmount
	}

	if r.DropsDiscountRule(current) {
		fields[model.FieldDiscountType] = nil
		fields[model.FieldDiscountValue] = decimal.Zero
	}

	return fields, pricing
}

type AttachIDProofRequest struct {
	Document     *multipart.FileHeader `json:"document"      swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	DocumentFile multipart.File        `json:"-"`
	DocumentType string                `json:"document_type" validate:"required,oneof=PASSPORT NATIONAL_ID DRIVING_LICENSE VOTER_ID OTHER"`
}

type AttachIDProofResponse struct {
	URL string `json:"url"`
}

// AvailabilityRequest asks whether rooms are free over [Arrival, Departure).
type AvailabilityRequest struct {
	RoomIDs   []string  `json:"room_ids"  validate:"required,min=1,unique,dive,uuid"`
	Arrival   time.Time `json:"arrival"   validate:"required"`
	Departure time.Time `json:"departure" validate:"required,gtfield=Arrival"`
}

type AvailabilityResponse struct {
	Available bool             `json:"available"`
	Conflicts []model.Conflict `json:"conflicts"`
}

type RoomDetailResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"room_id"`
	RoomNo      string  `json:"room_no"`
	RoomType    string  `json:"room_type"`
	RoomStatus  string  `json:"room_status"`
	IsCancelled bool    `json:"is_cancelled"`
	CancelledOn *string `json:"cancelled_on"`
	CancelledBy *string `json:"cancelled_by"`
}

func (r *RoomDetailResponse) FromModel(model model.RoomDetail) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNo = model.RoomNo
	r.RoomType = model.RoomType
	r.RoomStatus = model.RoomStatus
	r.IsCancelled = model.IsCancelled
	r.CancelledOn = formatOptional(model.CancelledOn)
	r.CancelledBy = model.CancelledBy
}

type BookingResponse struct {
	ID                 string               `json:"id"`
	PropertyID         string               `json:"property_id"`
	PackageID          *string              `json:"package_id"`
	BookingType        string               `json:"booking_type"`
	BookingStatus      model.Status         `json:"booking_status"`
	BookingDate        string               `json:"booking_date"`
	GuestName          string               `json:"guest_name"`
	GuestPhone         *string              `json:"guest_phone"`
	GuestEmail         *string              `json:"guest_email"`
	EstimatedArrival   string               `json:"estimated_arrival"`
	EstimatedDeparture string               `json:"estimated_departure"`
	ActualArrival      *string              `json:"actual_arrival"`
	ActualDeparture    *string              `json:"actual_departure"`
	Nights             int                  `json:"booking_nights"`
	AdultCount         int                  `json:"adult_count"`
	ChildCount         int                  `json:"child_count"`
	TotalGuest         int                  `json:"total_guest"`
	DiscountType       *string              `json:"discount_type"`
	DiscountValue      decimal.Decimal      `json:"discount_value"       swaggertype:"string"`
	PriceBeforeTax     decimal.Decimal      `json:"price_before_tax"     swaggertype:"string"`
	DiscountAmount     decimal.Decimal      `json:"discount_amount"      swaggertype:"string"`
	PriceAfterDiscount decimal.Decimal      `json:"price_after_discount" swaggertype:"string"`
	GSTAmount          decimal.Decimal      `json:"gst_amount"           swaggertype:"string"`
	RoomTaxAmount      decimal.Decimal      `json:"room_tax_amount"      swaggertype:"string"`
	FinalAmount        decimal.Decimal      `json:"final_amount"         swaggertype:"string"`
	CancellationFee    decimal.Decimal      `json:"cancellation_fee"     swaggertype:"string"`
	IsNoShow           bool                 `json:"is_no_show"`
	IsActive           bool                 `json:"is_active"`
	Comments           *string              `json:"comments"`
	PickUp             bool                 `json:"pick_up"`
	Drop               bool                 `json:"drop"`
	IDProofURL         *string              `json:"id_proof_url"`
	Rooms              []RoomDetailResponse `json:"rooms"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.PackageID = model.PackageID
	r.BookingType = model.BookingType
	r.BookingStatus = model.BookingStatus
	r.BookingDate = timezone.Format(model.BookingDate, constant.DateFormat)
	r.GuestName = model.GuestName
	r.GuestPhone = model.GuestPhone
	r.GuestEmail = model.GuestEmail
	r.EstimatedArrival = timezone.Format(model.EstimatedArrival, constant.DateFormat)
	r.EstimatedDeparture = timezone.Format(model.EstimatedDeparture, constant.DateFormat)
	r.ActualArrival = formatOptional(model.ActualArrival)
	r.ActualDeparture = formatOptional(model.ActualDeparture)
	r.Nights = model.Nights()
	r.AdultCount = model.AdultCount
	r.ChildCount = model.ChildCount
	r.TotalGuest = model.TotalGuest
	r.DiscountType = model.DiscountType
	r.DiscountValue = model.DiscountValue
	r.PriceBeforeTax = model.PriceBeforeTax
	r.DiscountAmount = model.DiscountAmount
	r.PriceAfterDiscount = model.PriceAfterDiscount
	r.GSTAmount = model.GSTAmount
	r.RoomTaxAmount = model.RoomTaxAmount
	r.FinalAmount = model.FinalAmount
	r.CancellationFee = model.CancellationFee
	r.IsNoShow = model.IsNoShow
	r.IsActive = model.IsActive
	r.Comments = model.Comments
	r.PickUp = model.PickUp
	r.Drop = model.Drop
	r.IDProofURL = model.IDProofURL
	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingResponse) SetRooms(details []model.RoomDetail) {
	r.Rooms = make([]RoomDetailResponse, len(details))
	for i, detail := range details {
		r.Rooms[i].FromModel(detail)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// SetRooms attaches room details to the bookings they belong to.
func (r *GetBookingsResponse) SetRooms(details []model.RoomDetail) {
	byBooking := make(map[string][]model.RoomDetail, len(r.Bookings))
	for _, detail := range details {
		byBooking[detail.BookingID] = append(byBooking[detail.BookingID], detail)
	}

	for i := range r.Bookings {
		r.Bookings[i].SetRooms(byBooking[r.Bookings[i].ID])
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
