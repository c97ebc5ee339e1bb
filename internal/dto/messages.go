package dto

import "github.com/felpschneider/TripSync/internal/models"

// CreateMessageRequest represents the payload to post a chat message
type CreateMessageRequest struct {
	Content string `json:"content"`
}

// MessageResponse is a chat message with its author resolved
type MessageResponse struct {
	ID        string             `json:"id"`
	TripID    string             `json:"trip_id"`
	Content   string             `json:"content"`
	User      models.UserSummary `json:"user"`
	CreatedAt string             `json:"created_at"`
}
