package model

import (
	"time"

	"github.com/google/uuid"
)

// UserStats accumulates experience points per member.
type UserStats struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	XP        int       `gorm:"default:0;not null" json:"xp"`
	Level     int       `gorm:"default:1;not null" json:"level"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
