package dto

import "github.com/felpschneider/TripSync/internal/models"

// CreateTripRequest represents the payload to create a trip
type CreateTripRequest struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	ImageURL    *string `json:"image_url"`
}

// UpdateTripRequest represents the payload to update a trip. All fields are
// required; the trip is replaced wholesale.
type UpdateTripRequest struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	ImageURL    *string `json:"image_url"`
}

// TripSummary is a trip enriched with the caller's financial position,
// returned by the trip list
type TripSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	TotalSpent  float64 `json:"total_spent"`
	UserSpent   float64 `json:"user_spent"`
	OwedToUser  float64 `json:"owed_to_user"`
	MemberCount int     `json:"member_count"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// TripDetail is a single trip with aggregate spend figures
type TripDetail struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Destination     string  `json:"destination"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Budget          float64 `json:"budget"`
	TotalSpent      float64 `json:"total_spent"`
	RemainingBudget float64 `json:"remaining_budget"`
	MemberCount     int     `json:"member_count"`
	OrganizerID     string  `json:"organizer_id"`
	ImageURL        *string `json:"image_url,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// MemberBalanceResponse is one member's settlement position within a trip
type MemberBalanceResponse struct {
	User      models.UserSummary `json:"user"`
	Role      string             `json:"role"`
	TotalPaid float64            `json:"total_paid"`
	TotalOwed float64            `json:"total_owed"`
	Net       float64            `json:"net"`
}

// BalancesResponse aggregates the settlement view of a trip
type BalancesResponse struct {
	TotalSpent      float64                 `json:"total_spent"`
	RemainingBudget float64                 `json:"remaining_budget"`
	Members         []MemberBalanceResponse `json:"members"`
}
