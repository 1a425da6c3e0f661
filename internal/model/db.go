package model

import "time"

// KVEntry is one row of the key-value table that backs the storefront records.
type KVEntry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:64;not null"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
