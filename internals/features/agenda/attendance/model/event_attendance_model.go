package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendance status values
const (
	StatusConfirmado = "confirmado"
	StatusAusente    = "ausente"
)

// EventAttendance is one member's presence record for one event. The pair
// (event_id, user_id) is unique, writes are upserts.
type EventAttendance struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_attendance_event_user" json:"event_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_attendance_event_user" json:"user_id"`

	Status string `gorm:"type:varchar(12);not null" json:"status"`

	// Who wrote the record: the member themselves or the staff roll-call.
	MarkedBy  *uuid.UUID `gorm:"type:uuid" json:"marked_by,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EventAttendance) TableName() string {
	return "event_attendance"
}
