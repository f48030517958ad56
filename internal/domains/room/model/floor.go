package model

import "pms/shared/model"

const (
	FloorTableName  = "floors"
	FloorEntityName = "floor"

	FieldRoomsCount = "rooms_count"
)

type Floor struct {
	ID         string `db:"id"`
	PropertyID string `db:"property_id"`
	FloorNo    int    `db:"floor_no"`
	RoomsCount int    `db:"rooms_count"`
	model.Metadata
}
