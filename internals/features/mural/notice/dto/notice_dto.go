package dto

type CreateNoticeRequest struct {
	Title    string `json:"title" validate:"required,max=150"`
	Body     string `json:"body" validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=normal media alta"`
}

type UpdateNoticeRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=150"`
	Body     *string `json:"body"`
	Priority *string `json:"priority" validate:"omitempty,oneof=normal media alta"`
}
