package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notice is one mural post.
type Notice struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title string    `gorm:"size:150;not null" json:"title"`
	Body  string    `gorm:"type:text;not null" json:"body"`

	// normal, media or alta
	Priority string `gorm:"type:varchar(10);default:'normal';not null" json:"priority"`

	CreatedBy uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Notice) TableName() string {
	return "notices"
}
