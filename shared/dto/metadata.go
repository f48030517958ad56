package dto

import (
	"pms/shared/constant"
	"pms/shared/model"
	"pms/shared/timezone"
)

type Metadata struct {
	CreatedOn string `json:"created_on"`
	CreatedBy string `json:"created_by"`
	UpdatedOn string `json:"updated_on"`
	UpdatedBy string `json:"updated_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedOn = timezone.Format(model.CreatedOn, constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.UpdatedOn = timezone.Format(model.UpdatedOn, constant.DateFormat)
	m.UpdatedBy = model.UpdatedBy
}
