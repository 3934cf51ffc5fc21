package dto

type BulkEntry struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Status string `json:"status" validate:"required,oneof=confirmado ausente"`
}

type BulkSubmitRequest struct {
	Entries []BulkEntry `json:"entries" validate:"required,min=1,dive"`
}

type BulkSubmitResponse struct {
	Saved         int      `json:"saved"`
	FailedUserIDs []string `json:"failed_user_ids"`
}

type ConfirmRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmado ausente"`
}

type FrequencyResponse struct {
	PastEvents int     `json:"past_events"`
	Confirmed  int     `json:"confirmed"`
	Percentage float64 `json:"percentage"`
}
