// Package routes wires the HTTP endpoints to their handlers.
package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/felpschneider/TripSync/internal/config"
	"github.com/felpschneider/TripSync/internal/handlers"
	"github.com/felpschneider/TripSync/internal/middleware"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	Auth       *handlers.AuthHandler
	GoogleAuth *handlers.GoogleAuthHandler
	Profile    *handlers.ProfileHandler
	Trips      *handlers.TripHandler
	Expenses   *handlers.ExpenseHandler
	Proposals  *handlers.ProposalHandler
	Tasks      *handlers.TaskHandler
	Messages   *handlers.MessageHandler
	Members    *handlers.MemberHandler
	Invites    *handlers.InviteHandler
	Activity   *handlers.ActivityHandler
	Export     *handlers.ExportHandler
	Health     *handlers.HealthHandler
}

// SetupRoutes configures all application routes on a fresh mux
func SetupRoutes(h Handlers, jwtCfg *config.JWTConfig) *http.ServeMux {
	mux := http.NewServeMux()

	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(next, jwtCfg)
	}

	// Health and operational endpoints
	mux.HandleFunc("GET /healthz", h.Health.Healthz)
	mux.HandleFunc("GET /livez", h.Health.Healthz)
	mux.HandleFunc("GET /readyz", h.Health.Readyz)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler())

	// Authentication
	mux.HandleFunc("POST /api/v1/auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/auth/google/login", h.GoogleAuth.GoogleLogin)
	mux.HandleFunc("GET /api/v1/auth/google/callback", h.GoogleAuth.GoogleCallback)

	// Profile
	mux.HandleFunc("GET /api/v1/profile", auth(h.Profile.GetProfile))
	mux.HandleFunc("PUT /api/v1/profile", auth(h.Profile.UpdateProfile))

	// Trips
	mux.HandleFunc("GET /api/v1/trips", auth(h.Trips.ListTrips))
	mux.HandleFunc("POST /api/v1/trips", auth(h.Trips.CreateTrip))
	mux.HandleFunc("GET /api/v1/trips/{id}", auth(h.Trips.GetTrip))
	mux.HandleFunc("PUT /api/v1/trips/{id}", auth(h.Trips.UpdateTrip))
	mux.HandleFunc("DELETE /api/v1/trips/{id}", auth(h.Trips.DeleteTrip))
	mux.HandleFunc("GET /api/v1/trips/{id}/balances", auth(h.Trips.GetBalances))

	// Expenses
	mux.HandleFunc("GET /api/v1/trips/{id}/expenses", auth(h.Expenses.ListExpenses))
	mux.HandleFunc("POST /api/v1/trips/{id}/expenses", auth(h.Expenses.CreateExpense))
	mux.HandleFunc("PUT /api/v1/trips/{id}/expenses/{expenseId}", auth(h.Expenses.UpdateExpense))
	mux.HandleFunc("DELETE /api/v1/trips/{id}/expenses/{expenseId}", auth(h.Expenses.DeleteExpense))

	// Proposals
	mux.HandleFunc("GET /api/v1/trips/{id}/proposals", auth(h.Proposals.ListProposals))
	mux.HandleFunc("POST /api/v1/trips/{id}/proposals", auth(h.Proposals.CreateProposal))
	mux.HandleFunc("POST /api/v1/trips/{id}/proposals/{proposalId}/vote", auth(h.Proposals.Vote))
	mux.HandleFunc("POST /api/v1/trips/{id}/proposals/{proposalId}/finalize", auth(h.Proposals.Finalize))

	// Tasks
	mux.HandleFunc("GET /api/v1/trips/{id}/tasks", auth(h.Tasks.ListTasks))
	mux.HandleFunc("POST /api/v1/trips/{id}/tasks", auth(h.Tasks.CreateTask))
	mux.HandleFunc("PUT /api/v1/trips/{id}/tasks/{taskId}", auth(h.Tasks.UpdateTask))
	mux.HandleFunc("POST /api/v1/trips/{id}/tasks/{taskId}/toggle", auth(h.Tasks.ToggleTask))
	mux.HandleFunc("DELETE /api/v1/trips/{id}/tasks/{taskId}", auth(h.Tasks.DeleteTask))

	// Chat
	mux.HandleFunc("GET /api/v1/trips/{id}/messages", auth(h.Messages.ListMessages))
	mux.HandleFunc("POST /api/v1/trips/{id}/messages", auth(h.Messages.CreateMessage))

	// Members and invites
	mux.HandleFunc("GET /api/v1/trips/{id}/members", auth(h.Members.ListMembers))
	mux.HandleFunc("POST /api/v1/trips/{id}/members/invite", auth(h.Members.InviteMember))
	mux.HandleFunc("DELETE /api/v1/trips/{id}/members/{userId}", auth(h.Members.RemoveMember))
	mux.HandleFunc("GET /api/v1/invites/{token}", h.Invites.ValidateInvite)
	mux.HandleFunc("POST /api/v1/invites/{token}/accept", auth(h.Invites.AcceptInvite))

	// Activity feed and export
	mux.HandleFunc("GET /api/v1/trips/{id}/activity", auth(h.Activity.ListActivities))
	mux.HandleFunc("GET /api/v1/trips/{id}/export/pdf", auth(h.Export.ExportTrip))

	return mux
}
