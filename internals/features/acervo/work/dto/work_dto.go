package dto

type CreateWorkRequest struct {
	Title    string `json:"title" validate:"required,max=150"`
	Composer string `json:"composer" validate:"omitempty,max=120"`
}

type UpdateWorkRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=150"`
	Composer *string `json:"composer" validate:"omitempty,max=120"`
}

// ScoreEntry is one instrument's score resolved to a public URL.
type ScoreEntry struct {
	Instrument string `json:"instrument"`
	URL        string `json:"url"`
}

type WorkResponse struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Slug     string       `json:"slug"`
	Composer string       `json:"composer"`
	AudioURL string       `json:"audio_url,omitempty"`
	Scores   []ScoreEntry `json:"scores"`
}
