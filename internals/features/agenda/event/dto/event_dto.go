package dto

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=150"`
	Type        string    `json:"type" validate:"required,oneof=ensaio concerto apresentacao extra"`
	Status      string    `json:"status" validate:"omitempty,oneof=ativo cancelado adiado"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	Location    string    `json:"location" validate:"omitempty,max=150"`
	Description string    `json:"description"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=150"`
	Type        *string    `json:"type" validate:"omitempty,oneof=ensaio concerto apresentacao extra"`
	Status      *string    `json:"status" validate:"omitempty,oneof=ativo cancelado adiado"`
	StartsAt    *time.Time `json:"starts_at"`
	Location    *string    `json:"location" validate:"omitempty,max=150"`
	Description *string    `json:"description"`
}

// EventWithMyStatus carries the caller's own attendance next to the event.
type EventWithMyStatus struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	StartsAt    time.Time `json:"starts_at"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	MyStatus    *string   `json:"my_status,omitempty"`
}
