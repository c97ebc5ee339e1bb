package dto

import (
	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/models"
)

// CreateTaskRequest represents the payload to add a trip task
type CreateTaskRequest struct {
	Title        string     `json:"title"`
	AssignedToID *uuid.UUID `json:"assigned_to_id"`
	DueDate      *string    `json:"due_date"`
}

// UpdateTaskRequest carries partial task changes. Nil fields are left as-is.
type UpdateTaskRequest struct {
	Title        *string    `json:"title"`
	AssignedToID *uuid.UUID `json:"assigned_to_id"`
	DueDate      *string    `json:"due_date"`
	Completed    *bool      `json:"completed"`
}

// TaskResponse is a task with its assignee resolved
type TaskResponse struct {
	ID         string              `json:"id"`
	TripID     string              `json:"trip_id"`
	Title      string              `json:"title"`
	Completed  bool                `json:"completed"`
	DueDate    *string             `json:"due_date"`
	AssignedTo *models.UserSummary `json:"assigned_to"`
	CreatedAt  string              `json:"created_at"`
}
