package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken stores only the HMAC hash of the issued refresh token.
type RefreshToken struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash []byte     `gorm:"type:bytea;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null;index" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	UserAgent *string    `gorm:"type:text" json:"user_agent,omitempty"`
	IP        *string    `gorm:"type:varchar(64)" json:"ip,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
