package model

import "time"

// KVEntry backs the blob store on SQL databases: one row per store key.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;column:store_key;size:255"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
