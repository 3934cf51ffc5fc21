package model

import (
	"time"

	"github.com/google/uuid"
)

type Badge struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug        string    `gorm:"size:60;unique;not null" json:"slug"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:60" json:"icon"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Badge) TableName() string {
	return "badges"
}

type UserBadge struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badges_user_badge" json:"user_id"`
	BadgeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badges_user_badge" json:"badge_id"`
	AwardedAt time.Time `gorm:"autoCreateTime" json:"awarded_at"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
