package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense categories
const (
	CategoryAccommodation = "accommodation"
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryActivity      = "activity"
	CategoryOther         = "other"
)

// Split methods
const (
	SplitMethodEqual  = "equal"
	SplitMethodCustom = "custom"
)

// ValidCategory reports whether c is a known expense category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryAccommodation, CategoryFood, CategoryTransport, CategoryActivity, CategoryOther:
		return true
	}
	return false
}

// Expense represents a shared expense within a trip
type Expense struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TripID        uuid.UUID `json:"trip_id" db:"trip_id"`
	Description   string    `json:"description" db:"description"`
	Amount        float64   `json:"amount" db:"amount"`
	Date          time.Time `json:"date" db:"date"`
	Category      string    `json:"category" db:"category"`
	SplitMethod   string    `json:"split_method" db:"split_method"`
	PaidByID      uuid.UUID `json:"paid_by_id" db:"paid_by_id"`
	ProofImageURL *string   `json:"proof_image_url" db:"proof_image_url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	PaidBy UserSummary    `json:"paid_by"`
	Splits []ExpenseSplit `json:"splits"`
}

// ExpenseSplit is one participant's persisted share of an expense. The
// full set of an expense's splits is recreated wholesale on every update.
type ExpenseSplit struct {
	ExpenseID uuid.UUID `json:"expense_id" db:"expense_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Amount    float64   `json:"amount" db:"amount"`

	User UserSummary `json:"user"`
}
