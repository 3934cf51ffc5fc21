package dto

import "time"

type UpdateProfileRequest struct {
	Nickname            *string    `json:"nickname" validate:"omitempty,max=60"`
	FullName            *string    `json:"full_name" validate:"omitempty,max=120"`
	BirthDate           *time.Time `json:"birth_date"`
	Phone               *string    `json:"phone" validate:"omitempty,max=30"`
	Instrument          *string    `json:"instrument" validate:"omitempty,max=60"`
	Section             *string    `json:"section" validate:"omitempty,max=60"`
	InstrumentOwnership *string    `json:"instrument_ownership" validate:"omitempty,oneof=proprio cefec"`
}

type PushTokenRequest struct {
	PushToken string `json:"push_token" validate:"required,max=255"`
}

// Flags only staff may touch.
type UpdateMemberFlagsRequest struct {
	Role            *string `json:"role" validate:"omitempty,oneof=musico admin maestro"`
	Status          *string `json:"status" validate:"omitempty,oneof=ativo inativo"`
	IsSpalla        *bool   `json:"is_spalla"`
	IsSectionLeader *bool   `json:"is_section_leader"`
	Section         *string `json:"section" validate:"omitempty,max=60"`
}

type MemberResponse struct {
	UserID              string     `json:"user_id"`
	UserName            string     `json:"user_name"`
	Nickname            string     `json:"nickname"`
	Email               string     `json:"email"`
	Role                string     `json:"role"`
	Instrument          string     `json:"instrument"`
	Section             string     `json:"section"`
	IsSpalla            bool       `json:"is_spalla"`
	IsSectionLeader     bool       `json:"is_section_leader"`
	InstrumentOwnership string     `json:"instrument_ownership"`
	PhotoURL            *string    `json:"photo_url,omitempty"`
	BirthDate           *time.Time `json:"birth_date,omitempty"`
	JoinedAt            *time.Time `json:"joined_at,omitempty"`
}
