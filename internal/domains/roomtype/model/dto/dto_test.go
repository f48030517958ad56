package dto_test

import (
	"encoding/json"
	"pms/internal/domains/roomtype/model"
	"pms/internal/domains/roomtype/model/dto"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomTypeRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomTypeRequest{Category: " Deluxe ", BedType: "Queen", ACType: model.ACTypeAC, Price: decimal.RequireFromString("2500.50")}

	roomType := req.ToModel("p-1", "manager")

	assert.NotEmpty(t, roomType.ID)
	assert.Equal(t, "p-1", roomType.PropertyID)
	assert.Equal(t, "Deluxe", roomType.Category)
	assert.True(t, roomType.IsActive)
	assert.True(t, roomType.Price.Equal(decimal.RequireFromString("2500.5")))
	assert.Equal(t, "manager", roomType.CreatedBy)
}

func TestUpdateRoomTypeRequest(t *testing.T) {
	var req dto.UpdateRoomTypeRequest
	assert.True(t, req.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`{"price":"3100.00"}`), &req))
	assert.False(t, req.IsEmpty())
	assert.False(t, req.HasNull())

	req = dto.UpdateRoomTypeRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"is_active":null}`), &req))
	assert.True(t, req.HasNull())
}

func TestRoomTypeResponse_FromModel(t *testing.T) {
	var res dto.RoomTypeResponse
	res.FromModel(model.RoomType{ID: "rt-1", Category: "Suite", BedType: "King", ACType: model.ACTypeNonAC})

	assert.Equal(t, "Suite / King / NON_AC", res.Label)
}
