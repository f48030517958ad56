package model

import "time"

// Metadata holds the audit columns every mutable table carries.
type Metadata struct {
	CreatedOn time.Time `db:"created_on"`
	CreatedBy string    `db:"created_by"`
	UpdatedOn time.Time `db:"updated_on"`
	UpdatedBy string    `db:"updated_by"`
}
