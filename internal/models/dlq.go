package models

import "time"

// DLQ holds outbox events that failed to reach the search index.
// Rows stay until the retry worker (or a manual /api/retry call) resolves them.
type DLQ struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	OutboxID   int64  `gorm:"index"`
	EntityType string // user | event
	EntityID   string
	Op         string
	ErrorMsg   string
	Payload    []byte    `gorm:"type:bytea"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	RetriedAt  *time.Time
	Resolved   bool `gorm:"default:false"`
}
