package model

import (
	"pms/shared/model"
	"time"
)

const (
	RoomDetailTableName  = "booking_room_details"
	RoomDetailEntityName = "booking room detail"

	FieldBookingID   = "booking_id"
	FieldRoomStatus  = "room_status"
	FieldIsCancelled = "is_cancelled"
	FieldCancelledOn = "cancelled_on"
	FieldCancelledBy = "cancelled_by"
)

// Room states recorded on a detail row. They describe the stay, not the
// housekeeping state of the physical room.
const (
	RoomStatusReserved  = "RESERVED"
	RoomStatusOccupied  = "OCCUPIED"
	RoomStatusVacated   = "VACATED"
	RoomStatusReleased  = "RELEASED"
	RoomStatusNoShow    = "NO_SHOW"
	RoomStatusCancelled = "CANCELLED"
)

// RoomDetail assigns one room to a booking. An uncancelled row is an active
// claim on the room for the booking's range.
type RoomDetail struct {
	ID          string     `db:"id"`
	BookingID   string     `db:"booking_id"`
	RoomID      string     `db:"room_id"`
	RoomNo      string     `db:"room_no" table:"rooms"`
	RoomType    string     `db:"room_type"`
	RoomStatus  string     `db:"room_status"`
	IsCancelled bool       `db:"is_cancelled"`
	CancelledOn *time.Time `db:"cancelled_on"`
	CancelledBy *string    `db:"cancelled_by"`
	model.Metadata
}

func (RoomDetail) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = " + RoomDetailTableName + ".room_id"
}
