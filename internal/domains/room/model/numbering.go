package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// FloorStride is the numeric distance between the same position on adjacent floors.
	FloorStride = 100
	firstIndex  = 1
)

// RoomNumber parses the numeric value of a room number. Labels such as "PH-1"
// are not numeric and report false.
func RoomNumber(roomNo string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(roomNo))
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// FormatRoomNo left-pads number with zeros up to width.
func FormatRoomNo(number, width int) string {
	return fmt.Sprintf("%0*d", width, number)
}

// GeneratedRoomNo is serialBase + floor*100 + index, padded to width.
func GeneratedRoomNo(serialBase, floorNo, index, width int) string {
	return FormatRoomNo(serialBase+floorNo*FloorStride+index, width)
}

// PaddingWidth is the width of the last numeric room number of a property.
// Rooms are expected in insertion order; zero means no padding.
func PaddingWidth(rooms []Room) int {
	for i := len(rooms) - 1; i >= 0; i-- {
		if _, ok := RoomNumber(rooms[i].RoomNo); ok {
			return len(strings.TrimSpace(rooms[i].RoomNo))
		}
	}

	return 0
}

// NextRoomNo infers the number of a room added to floorNo from the rooms the
// property already has:
//   - the highest numeric room on the floor plus one, keeping its width;
//   - otherwise the lowest room of the lowest populated floor moved by
//     (floorNo - baseFloor) * 100, keeping its width;
//   - otherwise floorNo*100 + 1.
func NextRoomNo(rooms []Room, floorNo int) string {
	var (
		floorMax, floorWidth int
		onFloor              bool
		numbered             []Room
	)

	for _, room := range rooms {
		n, ok := RoomNumber(room.RoomNo)
		if !ok {
			continue
		}

		numbered = append(numbered, room)

		if room.FloorNo == floorNo && (!onFloor || n > floorMax) {
			floorMax, floorWidth, onFloor = n, len(strings.TrimSpace(room.RoomNo)), true
		}
	}

	if onFloor {
		return FormatRoomNo(floorMax+1, floorWidth)
	}

	if len(numbered) == 0 {
		return FormatRoomNo(floorNo*FloorStride+firstIndex, 0)
	}

	sort.SliceStable(numbered, func(i, j int) bool {
		if numbered[i].FloorNo != numbered[j].FloorNo {
			return numbered[i].FloorNo < numbered[j].FloorNo
		}

		a, _ := RoomNumber(numbered[i].RoomNo)
		b, _ := RoomNumber(numbered[j].RoomNo)

		return a < b
	})

	base := numbered[0]
	baseNo, _ := RoomNumber(base.RoomNo)

	next := baseNo + (floorNo-base.FloorNo)*FloorStride
	if next <= 0 {
		next = floorNo*FloorStride + firstIndex
	}

	return FormatRoomNo(next, len(strings.TrimSpace(base.RoomNo)))
}
