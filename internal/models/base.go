package models

import "time"

// Base contains common columns for all tables. A zero ID marks a record
// that has not been saved yet.
type Base struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsNew reports whether the record has never been persisted.
func (b Base) IsNew() bool {
	return b.ID == 0
}
