package model

import "time"

// Slot is a single named value in the SQL-backed key-value store.
type Slot struct {
	Key       string    `gorm:"primaryKey;size:191"`
	Value     []byte    `gorm:"type:longblob;not null"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of naming strategy.
func (Slot) TableName() string {
	return "slots"
}
