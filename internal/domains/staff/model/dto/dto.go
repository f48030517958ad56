package dto

import (
	"pms/internal/domains/staff/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Email      string  `json:"email"       validate:"required,email,max=100"`
	Password   string  `json:"password"    validate:"required,min=8,max=72"`
	FullName   string  `json:"full_name"   validate:"required,max=100"`
	Role       string  `json:"role"        validate:"required,oneof=admin manager front_desk housekeeping"`
	PropertyID *string `json:"property_id" validate:"required_unless=Role admin,omitempty,uuid"`
}

func (r *CreateStaffRequest) ToModel(user, hashedPassword string) model.Staff {
	now := timezone.Now()

	return model.Staff{
		ID:         uuid.NewString(),
		PropertyID: r.PropertyID,
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Password:   hashedPassword,
		FullName:   r.FullName,
		Role:       r.Role,
		IsActive:   true,
		Metadata: gModel.Metadata{
			CreatedOn: now,
			CreatedBy: user,
			UpdatedOn: now,
			UpdatedBy: user,
		},
	}
}

// UpdateStaffRequest changes an account. A null property_id lifts the
// property restriction.
type UpdateStaffRequest struct {
	FullName   *string               `db:"full_name"   json:"full_name"   validate:"omitempty,max=100"`
	Role       *string               `db:"role"        json:"role"        validate:"omitempty,oneof=admin manager front_desk housekeeping"`
	PropertyID gDto.Optional[string] `db:"property_id" json:"property_id" swaggertype:"string" validate:"omitnil,uuid"`
	IsActive   *bool                 `db:"is_active"   json:"is_active"`
}

func (r *UpdateStaffRequest) IsEmpty() bool {
	return r.FullName == nil && r.Role == nil && !r.PropertyID.Present() && r.IsActive == nil
}

type StaffResponse struct {
	ID         string  `json:"id"`
	PropertyID *string `json:"property_id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	IsActive   bool    `json:"is_active"`
	LastLogin  *string `json:"last_login"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
