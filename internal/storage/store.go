// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/models"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for uniqueness violations (duplicate email,
	// already-member) and for state transitions that already happened
	// (finalizing a terminal proposal, reusing an invite).
	ErrConflict = errors.New("conflict")
)

// Store defines the persistence operations the handlers depend on.
// Operations that mutate multiple rows (an expense with its splits and an
// activity entry, a proposal with its creator vote) are applied atomically
// by the implementation. The handle is constructed at process start and
// closed at shutdown; there is no package-level client.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error

	// Trips. CreateTrip also records the organizer membership and the
	// trip_created activity entry.
	CreateTrip(ctx context.Context, trip *models.Trip, activity *models.Activity) error
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTripsForUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip, activity *models.Activity) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	// Membership / access guard
	HasTripAccess(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
	ListTripMembers(ctx context.Context, tripID uuid.UUID) ([]models.TripMember, error)
	CountTripMembers(ctx context.Context, tripID uuid.UUID) (int, error)
	AddTripMember(ctx context.Context, member *models.TripMember, activity *models.Activity) error
	RemoveTripMember(ctx context.Context, tripID, userID uuid.UUID) error

	// Expenses. Splits are recreated wholesale on update.
	CreateExpense(ctx context.Context, expense *models.Expense, activity *models.Activity) error
	GetExpense(ctx context.Context, tripID, expenseID uuid.UUID) (*models.Expense, error)
	ListExpenses(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, tripID, expenseID uuid.UUID) error

	// Proposals. CreateProposal auto-casts the creator's yes vote.
	// FinalizeProposal only succeeds while the proposal is still voting and
	// returns ErrConflict otherwise.
	CreateProposal(ctx context.Context, proposal *models.Proposal, activity *models.Activity) error
	GetProposal(ctx context.Context, tripID, proposalID uuid.UUID) (*models.Proposal, error)
	ListProposals(ctx context.Context, tripID uuid.UUID) ([]models.Proposal, error)
	UpsertVote(ctx context.Context, vote *models.Vote) error
	FinalizeProposal(ctx context.Context, proposalID uuid.UUID, status string, activity *models.Activity) error

	// Tasks
	CreateTask(ctx context.Context, task *models.Task) error
	GetTask(ctx context.Context, tripID, taskID uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, tripID uuid.UUID) ([]models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task, activity *models.Activity) error
	DeleteTask(ctx context.Context, tripID, taskID uuid.UUID) error

	// Chat. ListMessages returns at most limit of the newest messages,
	// oldest first.
	CreateMessage(ctx context.Context, msg *models.ChatMessage) error
	ListMessages(ctx context.Context, tripID uuid.UUID, limit int) ([]models.ChatMessage, error)

	// Invites. AcceptInvite marks the token used and adds the membership
	// in one transaction.
	CreateInvite(ctx context.Context, invite *models.Invite) error
	GetInvite(ctx context.Context, token uuid.UUID) (*models.Invite, error)
	AcceptInvite(ctx context.Context, token uuid.UUID, member *models.TripMember, activity *models.Activity) error

	// Activity feed
	ListActivities(ctx context.Context, tripID uuid.UUID, limit int) ([]models.Activity, error)

	// Ping verifies store connectivity for readiness checks.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close()
}
