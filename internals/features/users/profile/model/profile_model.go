package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile carries the musician data shown in the directory and used by the
// attendance roster grouping.
type Profile struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Nickname  string     `gorm:"size:60" json:"nickname"`
	FullName  string     `gorm:"size:120" json:"full_name"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Phone     *string    `gorm:"size:30" json:"phone,omitempty"`

	Instrument string `gorm:"size:60" json:"instrument"`
	Section    string `gorm:"size:60" json:"section"`

	IsSpalla        bool `gorm:"default:false" json:"is_spalla"`
	IsSectionLeader bool `gorm:"default:false" json:"is_section_leader"`

	// proprio or cefec
	InstrumentOwnership string  `gorm:"type:varchar(10);default:'proprio'" json:"instrument_ownership"`
	PushToken           *string `gorm:"size:255" json:"push_token,omitempty"`
	PhotoURL            *string `gorm:"type:text" json:"photo_url,omitempty"`

	JoinedAt  *time.Time `gorm:"type:date" json:"joined_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
