package model

import (
	"pms/shared/model"
	"time"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit log"

	CachePrefix = "audit"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldEventID    = "event_id"
	FieldTableName  = "table_name"
	FieldEventType  = "event_type"
	FieldActor      = "actor"
	FieldCreatedOn  = "created_on"
)

// Lifecycle event types.
const (
	EventCreated      = "CREATED"
	EventStatusChange = "STATUS_CHANGED"
	EventCancelled    = "CANCELLED"
	EventRoomCancel   = "ROOM_CANCELLED"
	EventUpdated      = "UPDATED"
	EventIDProof      = "ID_PROOF_ATTACHED"
)

// Event is a change to a record of a property, as reported by a service.
type Event struct {
	PropertyID string    `json:"property_id"`
	EventID    string    `json:"event_id"`
	TableName  string    `json:"table_name"`
	EventType  string    `json:"event_type"`
	Details    any       `json:"details,omitempty"`
	Actor      string    `json:"actor"`
	OccurredOn time.Time `json:"occurred_on"`
}

// AuditLog is the stored form of an Event. Details holds raw JSON.
type AuditLog struct {
	ID         string `db:"id"`
	PropertyID string `db:"property_id"`
	EventID    string `db:"event_id"`
	TableName  string `db:"table_name"`
	EventType  string `db:"event_type"`
	Details    string `db:"details"`
	Actor      string `db:"actor"`
	model.Metadata
}
