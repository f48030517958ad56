package model

import (
	"pms/shared/model"
	"time"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	CachePrefix = "staff"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldFullName   = "full_name"
	FieldRole       = "role"
	FieldIsActive   = "is_active"
	FieldLastLogin  = "last_login"
)

// Staff is an account of the front office. A nil PropertyID grants access to
// every property.
type Staff struct {
	ID         string     `db:"id"`
	PropertyID *string    `db:"property_id"`
	Email      string     `db:"email"`
	Password   string     `db:"password"`
	FullName   string     `db:"full_name"`
	Role       string     `db:"role"`
	IsActive   bool       `db:"is_active"`
	LastLogin  *time.Time `db:"last_login"`
	model.Metadata
}

// Property returns the property the account is bound to, or an empty string.
func (s Staff) Property() string {
	if s.PropertyID == nil {
		return ""
	}

	return *s.PropertyID
}
