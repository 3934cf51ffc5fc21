package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is one agenda entry: rehearsal, concert, presentation or extra.
type Event struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title string    `gorm:"size:150;not null" json:"title" validate:"required,max=150"`

	// ensaio, concerto, apresentacao or extra
	Type string `gorm:"type:varchar(20);default:'ensaio';not null" json:"type"`

	// Lifecycle: ativo, cancelado or adiado. Cancelled and postponed events
	// stay listed and keep their attendance records.
	Status string `gorm:"type:varchar(10);default:'ativo';not null" json:"status"`

	StartsAt    time.Time `gorm:"not null;index" json:"starts_at"`
	Location    string    `gorm:"size:150" json:"location"`
	Description string    `gorm:"type:text" json:"description"`

	CreatedBy uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

var EventTypes = []string{"ensaio", "concerto", "apresentacao", "extra"}

var EventStatuses = []string{"ativo", "cancelado", "adiado"}
