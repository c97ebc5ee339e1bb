package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a trip to-do, optionally assigned to a member
type Task struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	TripID       uuid.UUID  `json:"trip_id" db:"trip_id"`
	Title        string     `json:"title" db:"title"`
	AssignedToID *uuid.UUID `json:"assigned_to_id" db:"assigned_to_id"`
	DueDate      *time.Time `json:"due_date" db:"due_date"`
	Completed    bool       `json:"completed" db:"completed"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`

	AssignedTo *UserSummary `json:"assigned_to"`
}
