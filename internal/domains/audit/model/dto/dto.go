package dto

import (
	"encoding/json"
	"pms/internal/domains/audit/model"
	"pms/shared"
	"pms/shared/constant"
	"pms/shared/timezone"
)

type AuditLogResponse struct {
	ID         string          `json:"id"`
	PropertyID string          `json:"property_id"`
	EventID    string          `json:"event_id"`
	TableName  string          `json:"table_name"`
	EventType  string          `json:"event_type"`
	Details    json.RawMessage `json:"details" swaggertype:"object"`
	Actor      string          `json:"actor"`
	CreatedOn  string          `json:"created_on"`
}

func (r *AuditLogResponse) FromModel(model model.AuditLog) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.EventID = model.EventID
	r.TableName = model.TableName
	r.EventType = model.EventType
	r.Actor = model.Actor
	r.CreatedOn = timezone.Format(model.CreatedOn, constant.DateFormat)

	if model.Details != constant.Empty {
		r.Details = json.RawMessage(model.Details)
	}
}

type GetAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"audit_logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AuditLogs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		r.AuditLogs[i].FromModel(mod)
	}
}
