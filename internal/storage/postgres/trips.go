package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
)

const tripColumns = `id, title, destination, start_date, end_date, budget, organizer_id, image_url, created_at, updated_at`

// CreateTrip inserts the trip, its organizer membership, and the creation
// activity entry in one transaction.
func (p *Postgres) CreateTrip(ctx context.Context, trip *models.Trip, activity *models.Activity) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO trips (id, title, destination, start_date, end_date, budget, organizer_id, image_url, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			trip.ID, trip.Title, trip.Destination, trip.StartDate, trip.EndDate, trip.Budget, trip.OrganizerID, trip.ImageURL, trip.CreatedAt, trip.UpdatedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO trip_members (trip_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`,
			trip.ID, trip.OrganizerID, models.RoleOrganizer, trip.CreatedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		return insertActivity(ctx, tx, activity)
	})
}

func (p *Postgres) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	var t models.Trip
	err := p.pool.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id).Scan(
		&t.ID, &t.Title, &t.Destination, &t.StartDate, &t.EndDate, &t.Budget, &t.OrganizerID, &t.ImageURL, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

// ListTripsForUser returns the trips the user organizes or participates in,
// newest first.
func (p *Postgres) ListTripsForUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT DISTINCT t.id, t.title, t.destination, t.start_date, t.end_date, t.budget, t.organizer_id, t.image_url, t.created_at, t.updated_at
		   FROM trips t
		   LEFT JOIN trip_members tm ON tm.trip_id = t.id
		  WHERE t.organizer_id = $1 OR tm.user_id = $1
		  ORDER BY t.created_at DESC`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.Title, &t.Destination, &t.StartDate, &t.EndDate, &t.Budget, &t.OrganizerID, &t.ImageURL, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, mapErr(err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (p *Postgres) UpdateTrip(ctx context.Context, trip *models.Trip, activity *models.Activity) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE trips
			    SET title = $1, destination = $2, start_date = $3, end_date = $4, budget = $5, image_url = $6, updated_at = $7
			  WHERE id = $8`,
			trip.Title, trip.Destination, trip.StartDate, trip.EndDate, trip.Budget, trip.ImageURL, trip.UpdatedAt, trip.ID,
		)
		if err != nil {
			return mapErr(err)
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrNotFound
		}
		return insertActivity(ctx, tx, activity)
	})
}

// DeleteTrip removes the trip; dependent rows are removed by the schema's
// ON DELETE CASCADE.
func (p *Postgres) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// HasTripAccess reports whether the user is the trip's organizer or a
// member. Callers that get false report the trip as not found.
func (p *Postgres) HasTripAccess(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM trips t
			 LEFT JOIN trip_members tm ON tm.trip_id = t.id AND tm.user_id = $2
			WHERE t.id = $1 AND (t.organizer_id = $2 OR tm.user_id IS NOT NULL)
		 )`, tripID, userID).Scan(&ok)
	if err != nil {
		return false, mapErr(err)
	}
	return ok, nil
}

func (p *Postgres) ListTripMembers(ctx context.Context, tripID uuid.UUID) ([]models.TripMember, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT tm.trip_id, tm.user_id, tm.role, tm.joined_at, u.name, u.email, u.pix_key, u.profile_image_url
		   FROM trip_members tm
		   JOIN users u ON u.id = tm.user_id
		  WHERE tm.trip_id = $1
		  ORDER BY tm.joined_at ASC`, tripID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	members := make([]models.TripMember, 0)
	for rows.Next() {
		var m models.TripMember
		if err := rows.Scan(&m.TripID, &m.UserID, &m.Role, &m.JoinedAt, &m.User.Name, &m.User.Email, &m.User.PixKey, &m.User.ProfileImageURL); err != nil {
			return nil, mapErr(err)
		}
		m.User.ID = m.UserID
		members = append(members, m)
	}
	return members, rows.Err()
}

func (p *Postgres) CountTripMembers(ctx context.Context, tripID uuid.UUID) (int, error) {
	var n int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(1) FROM trip_members WHERE trip_id = $1`, tripID).Scan(&n); err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

// AddTripMember inserts a membership and its activity entry atomically.
// An existing (trip, user) pair maps to ErrConflict.
func (p *Postgres) AddTripMember(ctx context.Context, member *models.TripMember, activity *models.Activity) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO trip_members (trip_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`,
			member.TripID, member.UserID, member.Role, member.JoinedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		return insertActivity(ctx, tx, activity)
	})
}

func (p *Postgres) RemoveTripMember(ctx context.Context, tripID, userID uuid.UUID) error {
	tag, err := p.pool.Exec(ctx,
		`DELETE FROM trip_members WHERE trip_id = $1 AND user_id = $2`, tripID, userID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (p *Postgres) ListActivities(ctx context.Context, tripID uuid.UUID, limit int) ([]models.Activity, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, trip_id, user_id, type, message, created_at
		   FROM activities
		  WHERE trip_id = $1
		  ORDER BY created_at DESC
		  LIMIT $2`, tripID, limit)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.TripID, &a.UserID, &a.Type, &a.Message, &a.CreatedAt); err != nil {
			return nil, mapErr(err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// insertActivity appends an audit entry inside an ongoing transaction.
// A nil activity is a no-op so read-mostly mutations can skip the feed.
func insertActivity(ctx context.Context, tx pgx.Tx, activity *models.Activity) error {
	if activity == nil {
		return nil
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO activities (id, trip_id, user_id, type, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		activity.ID, activity.TripID, activity.UserID, activity.Type, activity.Message, activity.CreatedAt,
	)
	return mapErr(err)
}
