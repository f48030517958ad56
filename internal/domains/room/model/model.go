package model

import "pms/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	// CachePrefix is shared by every cached room read.
	CachePrefix = "room"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldRoomNo     = "room_no"
	FieldRoomTypeID = "room_type_id"
	FieldFloorNo    = "floor_no"
	FieldIsDirty    = "is_dirty"
	FieldIsActive   = "is_active"
)

type Room struct {
	ID         string `db:"id"`
	PropertyID string `db:"property_id"`
	RoomNo     string `db:"room_no"`
	RoomTypeID string `db:"room_type_id"`
	FloorNo    int    `db:"floor_no"`
	IsDirty    bool   `db:"is_dirty"`
	IsActive   bool   `db:"is_active"`
	model.Metadata
}
