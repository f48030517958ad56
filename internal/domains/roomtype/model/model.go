package model

import (
	"pms/shared/model"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_types"
	EntityName = "room type"

	CachePrefix = "roomtype"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldCategory   = "category"
	FieldBedType    = "bed_type"
	FieldACType     = "ac_type"
	FieldPrice      = "price"
	FieldIsActive   = "is_active"
)

const (
	ACTypeAC    = "AC"
	ACTypeNonAC = "NON_AC"
)

const labelSeparator = " / "

// RoomType is the nightly rate of one category, bed and AC combination within a property.
type RoomType struct {
	ID         string          `db:"id"`
	PropertyID string          `db:"property_id"`
	Category   string          `db:"category"`
	BedType    string          `db:"bed_type"`
	ACType     string          `db:"ac_type"`
	Price      decimal.Decimal `db:"price"`
	IsActive   bool            `db:"is_active"`
	model.Metadata
}

// Label is the snapshot stored on a booking's room detail.
func (r RoomType) Label() string {
	return strings.Join([]string{r.Category, r.BedType, r.ACType}, labelSeparator)
}
