package model_test

import (
	"pms/internal/domains/roomtype/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomType_Label(t *testing.T) {
	roomType := model.RoomType{Category: "Deluxe", BedType: "King", ACType: model.ACTypeAC}

	assert.Equal(t, "Deluxe / King / AC", roomType.Label())
}
