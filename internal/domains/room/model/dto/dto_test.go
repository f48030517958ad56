package dto_test

import (
	"encoding/json"
	"pms/internal/domains/room/model"
	"pms/internal/domains/room/model/dto"
	gModel "pms/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoomRequest_ToModel(t *testing.T) {
	req := dto.AddRoomRequest{FloorNo: 2, RoomTypeID: "rt-1"}

	room := req.ToModel("p-1", "203", "front-desk")

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "p-1", room.PropertyID)
	assert.Equal(t, "203", room.RoomNo)
	assert.Equal(t, 2, room.FloorNo)
	assert.True(t, room.IsActive)
	assert.False(t, room.IsDirty)
	assert.Equal(t, "front-desk", room.CreatedBy)
}

func TestUpdateRoomRequest_Presence(t *testing.T) {
	var req dto.UpdateRoomRequest

	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.True(t, req.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`{"is_dirty":false}`), &req))
	assert.False(t, req.IsEmpty())
	assert.False(t, req.HasNull())

	req = dto.UpdateRoomRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"floor_no":null}`), &req))
	assert.True(t, req.HasNull())
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	rooms := []model.Room{
		{ID: "r-1", RoomNo: "101", FloorNo: 1, IsActive: true, Metadata: gModel.Metadata{CreatedOn: created}},
		{ID: "r-2", RoomNo: "102", FloorNo: 1, IsDirty: true, IsActive: true},
	}

	var res dto.GetRoomsResponse
	res.FromModels(rooms, 2, 0)

	require.Len(t, res.Rooms, 2)
	assert.Equal(t, 1, res.TotalPage)
	assert.Equal(t, "101", res.Rooms[0].RoomNo)
	assert.True(t, res.Rooms[1].IsDirty)
}
