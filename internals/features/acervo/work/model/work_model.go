package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Work is one piece of the repertoire: metadata, one rehearsal audio and one
// score file per instrument.
type Work struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title    string    `gorm:"size:150;not null" json:"title"`
	Slug     string    `gorm:"size:160;unique;not null" json:"slug"`
	Composer string    `gorm:"size:120" json:"composer"`

	// Object key of the rehearsal audio, empty until uploaded.
	AudioPath string `gorm:"type:text" json:"audio_path"`

	// instrument name -> object key of that instrument's score
	ScorePaths datatypes.JSONMap `gorm:"type:jsonb" json:"score_paths"`

	CreatedBy uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Work) TableName() string {
	return "works"
}
