package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations are applied in order at startup. Statements are idempotent so
// restarts are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		profile_image_url TEXT,
		pix_key TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		destination TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		budget NUMERIC(12,2) NOT NULL CHECK (budget > 0),
		organizer_id UUID NOT NULL REFERENCES users(id),
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CHECK (end_date >= start_date)
	)`,
	`CREATE TABLE IF NOT EXISTS trip_members (
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id),
		role TEXT NOT NULL DEFAULT 'member',
		joined_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (trip_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY,
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		date DATE NOT NULL,
		category TEXT NOT NULL DEFAULT 'other',
		split_method TEXT NOT NULL DEFAULT 'equal',
		paid_by_id UUID NOT NULL REFERENCES users(id),
		proof_image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expense_splits (
		expense_id UUID NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id),
		amount NUMERIC(12,2) NOT NULL,
		PRIMARY KEY (expense_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id UUID PRIMARY KEY,
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'voting',
		created_by_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS votes (
		proposal_id UUID NOT NULL REFERENCES proposals(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id),
		vote TEXT NOT NULL,
		PRIMARY KEY (proposal_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id UUID PRIMARY KEY,
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		assigned_to_id UUID REFERENCES users(id),
		due_date DATE,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invites (
		token UUID PRIMARY KEY,
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		email TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		used BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY,
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id),
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id UUID PRIMARY KEY,
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id),
		type TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_trip ON expenses(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_proposals_trip ON proposals(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_trip ON tasks(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_trip_created ON chat_messages(trip_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_trip_created ON activities(trip_id, created_at)`,
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
