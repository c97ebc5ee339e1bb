package dto

// ActivityResponse is one entry in a trip's activity feed
type ActivityResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}
