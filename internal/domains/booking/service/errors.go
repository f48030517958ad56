package service

import (
	"pms/internal/domains/booking/model"
	"pms/shared/failure"
)

const (
	ReasonRoomUnavailableAtCreate = "ROOM_UNAVAILABLE_AT_CREATE"
	ReasonRoomNotAvailable        = "ROOM_NOT_AVAILABLE"
	ReasonInvalidCheckout         = "INVALID_CHECKOUT"
	ReasonBookingNotFound         = "BOOKING_NOT_FOUND"
	ReasonAlreadyTerminal         = "ALREADY_TERMINAL"
	ReasonInvalidTransition       = "INVALID_TRANSITION"
	ReasonRoomDetailNotFound      = "ROOM_DETAIL_NOT_FOUND"
)

// OccupiedRoom names a room and the bookings currently holding it.
type OccupiedRoom struct {
	RoomID     string   `json:"room_id"`
	RoomNo     string   `json:"room_no"`
	BookingIDs []string `json:"booking_ids"`
}

func errRoomUnavailableAtCreate(conflicts []model.Conflict) error {
	return failure.ConflictWithDetails(ReasonRoomUnavailableAtCreate, "one or more rooms are already booked for the requested dates", map[string]any{
		"conflicts": conflicts,
	})
}

func errRoomNotAvailable(conflicts []model.Conflict) error {
	return failure.ConflictWithDetails(ReasonRoomNotAvailable, "one or more rooms are occupied by another booking", map[string]any{
		"rooms": groupByRoom(conflicts),
	})
}

func errInvalidCheckout(current model.Status) error {
	return failure.ConflictWithDetails(ReasonInvalidCheckout, "only a checked-in booking can be checked out", map[string]any{
		"current_status": current,
	})
}

func errBookingNotFound() error {
	return failure.NotFoundWithReason(ReasonBookingNotFound, "booking not found")
}

func errAlreadyTerminal(current model.Status) error {
	return failure.ConflictWithDetails(ReasonAlreadyTerminal, "booking is already "+string(current), map[string]any{
		"current_status": current,
	})
}

func errInvalidTransition(current, target model.Status) error {
	return failure.ConflictWithDetails(ReasonInvalidTransition, "booking cannot move from "+string(current)+" to "+string(target), map[string]any{
		"current_status": current,
		"target_status":  target,
	})
}

func errRoomDetailNotFound() error {
	return failure.NotFoundWithReason(ReasonRoomDetailNotFound, "room is not active on this booking")
}

// groupByRoom keeps the order in which rooms first appear.
func groupByRoom(conflicts []model.Conflict) []OccupiedRoom {
	rooms := []OccupiedRoom{}
	index := map[string]int{}

	for _, c := range conflicts {
		i, ok := index[c.RoomID]
		if !ok {
			i = len(rooms)
			index[c.RoomID] = i
			rooms = append(rooms, OccupiedRoom{RoomID: c.RoomID, RoomNo: c.RoomNo})
		}

		rooms[i].BookingIDs = append(rooms[i].BookingIDs, c.BookingID)
	}

	return rooms
}
