package models

import "time"

// SchemaMigration records applied data migrations so each runs once.
type SchemaMigration struct {
	ID        string    `json:"id" gorm:"primaryKey;size:80"`
	AppliedAt time.Time `json:"applied_at"`
}
