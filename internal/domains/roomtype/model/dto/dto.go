package dto

import (
	"pms/internal/domains/roomtype/model"
	"pms/shared"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	Category string          `json:"category" validate:"required,max=50"`
	BedType  string          `json:"bed_type" validate:"required,max=50"`
	ACType   string          `json:"ac_type"  validate:"required,oneof=AC NON_AC"`
	Price    decimal.Decimal `json:"price"    swaggertype:"string" validate:"gte=0"`
}

func (r *CreateRoomTypeRequest) ToModel(propertyID, user string) model.RoomType {
	now := timezone.Now()

	return model.RoomType{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		Category:   strings.TrimSpace(r.Category),
		BedType:    strings.TrimSpace(r.BedType),
		ACType:     r.ACType,
		Price:      r.Price,
		IsActive:   true,
		Metadata: gModel.Metadata{
			CreatedOn: now,
			CreatedBy: user,
			UpdatedOn: now,
			UpdatedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Price    gDto.Optional[decimal.Decimal] `db:"price"     json:"price"     swaggertype:"string" validate:"omitnil,gte=0"`
	IsActive gDto.Optional[bool]            `db:"is_active" json:"is_active"`
}

func (r *UpdateRoomTypeRequest) IsEmpty() bool {
	return !r.Price.Present() && !r.IsActive.Present()
}

func (r *UpdateRoomTypeRequest) HasNull() bool {
	return (r.Price.Present() && !r.Price.Valid) || (r.IsActive.Present() && !r.IsActive.Valid)
}

type RoomTypeResponse struct {
	ID         string          `json:"id"`
	PropertyID string          `json:"property_id"`
	Category   string          `json:"category"`
	BedType    string          `json:"bed_type"`
	ACType     string          `json:"ac_type"`
	Label      string          `json:"label"`
	Price      decimal.Decimal `json:"price" swaggertype:"string"`
	IsActive   bool            `json:"is_active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.Category = model.Category
	r.BedType = model.BedType
	r.ACType = model.ACType
	r.Label = model.Label()
	r.Price = model.Price
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
