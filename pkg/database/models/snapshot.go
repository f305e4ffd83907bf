package models

import (
	"time"

	"gorm.io/datatypes"
)

// Database model for a finished match.
// The payload is the match as served by the backend, it never changes once written.
type MatchSnapshot struct {
	MatchID     string `gorm:"primaryKey;type:varchar(32)"`
	QueueID     int    `gorm:"index:idx_match_snapshots_queue"`
	GameVersion string `gorm:"type:varchar(32)"`
	PlatformID  string `gorm:"type:varchar(8)"`
	EndedAt     time.Time
	Payload     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
}
