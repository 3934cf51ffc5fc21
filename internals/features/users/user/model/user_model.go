package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"size:250" json:"password,omitempty" validate:"omitempty,min=8"`
	GoogleID *string   `gorm:"size:255;uniqueIndex" json:"google_id,omitempty"`

	// musico, admin or maestro
	Role   string `gorm:"type:varchar(20);default:'musico';not null" json:"role"`
	Status string `gorm:"type:varchar(10);default:'ativo';not null" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
