package model

import "time"

// ConflictQuery describes a candidate claim on a set of rooms over the
// half-open range [Arrival, Departure).
type ConflictQuery struct {
	RoomIDs   []string
	Arrival   time.Time
	Departure time.Time
	// Statuses of the bookings that may conflict. Defaults to ClaimingStatuses.
	Statuses []Status
	// ExcludeBookingID skips the booking being transitioned.
	ExcludeBookingID string
	// IncludeOccupied also reports rooms held by a CHECKED_IN booking whatever its dates.
	IncludeOccupied bool
}

// Conflict is one active claim overlapping a ConflictQuery.
type Conflict struct {
	RoomID        string `db:"room_id"        json:"room_id"`
	RoomNo        string `db:"room_no"        json:"room_no"`
	BookingID     string `db:"booking_id"     json:"booking_id"`
	BookingStatus Status `db:"booking_status" json:"booking_status"`
}
