package dto

import (
	"pms/internal/domains/room/model"
	"pms/shared"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"

	"github.com/google/uuid"
)

type FloorPlan struct {
	FloorNo    int `json:"floor_no"    validate:"gte=0"`
	RoomsCount int `json:"rooms_count" validate:"gte=1,lte=99"`
}

type GenerateRoomsRequest struct {
	RoomTypeID string      `json:"room_type_id" validate:"required,uuid"`
	SerialBase int         `json:"serial_base"  validate:"gte=0"`
	Floors     []FloorPlan `json:"floors"       validate:"required,min=1,dive"`
}

type GenerateRoomsResponse struct {
	Requested int `json:"requested"`
	Inserted  int `json:"inserted"`
}

type AddRoomRequest struct {
	FloorNo    int    `json:"floor_no"     validate:"gte=0"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	// RoomNo overrides the inferred number when set.
	RoomNo string `json:"room_no" validate:"omitempty,max=20"`
}

func (r *AddRoomRequest) ToModel(propertyID, roomNo, user string) model.Room {
	return NewRoom(propertyID, r.RoomTypeID, roomNo, r.FloorNo, user)
}

func NewRoom(propertyID, roomTypeID, roomNo string, floorNo int, user string) model.Room {
	now := timezone.Now()

	return model.Room{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		RoomNo:     roomNo,
		RoomTypeID: roomTypeID,
		FloorNo:    floorNo,
		IsActive:   true,
		Metadata: gModel.Metadata{
			CreatedOn: now,
			CreatedBy: user,
			UpdatedOn: now,
			UpdatedBy: user,
		},
	}
}

func NewFloor(propertyID string, floorNo int, user string) model.Floor {
	now := timezone.Now()

	return model.Floor{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		FloorNo:    floorNo,
		Metadata: gModel.Metadata{
			CreatedOn: now,
			CreatedBy: user,
			UpdatedOn: now,
			UpdatedBy: user,
		},
	}
}

// UpdateRoomRequest is a partial update: only fields present in the payload are written.
type UpdateRoomRequest struct {
	RoomTypeID gDto.Optional[string] `db:"room_type_id" json:"room_type_id" validate:"omitnil,uuid"`
	FloorNo    gDto.Optional[int]    `db:"floor_no"     json:"floor_no"     validate:"omitnil,gte=0"`
	IsDirty    gDto.Optional[bool]   `db:"is_dirty"     json:"is_dirty"`
	IsActive   gDto.Optional[bool]   `db:"is_active"    json:"is_active"`
}

func (r *UpdateRoomRequest) IsEmpty() bool {
	return !r.RoomTypeID.Present() && !r.FloorNo.Present() && !r.IsDirty.Present() && !r.IsActive.Present()
}

// HasNull reports whether a non-nullable column was sent as null.
func (r *UpdateRoomRequest) HasNull() bool {
	return (r.RoomTypeID.Present() && !r.RoomTypeID.Valid) ||
		(r.FloorNo.Present() && !r.FloorNo.Valid) ||
		(r.IsDirty.Present() && !r.IsDirty.Valid) ||
		(r.IsActive.Present() && !r.IsActive.Valid)
}

type RoomResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	RoomNo     string `json:"room_no"`
	RoomTypeID string `json:"room_type_id"`
	FloorNo    int    `json:"floor_no"`
	IsDirty    bool   `json:"is_dirty"`
	IsActive   bool   `json:"is_active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.RoomNo = model.RoomNo
	r.RoomTypeID = model.RoomTypeID
	r.FloorNo = model.FloorNo
	r.IsDirty = model.IsDirty
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
