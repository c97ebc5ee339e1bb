package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
)

func (p *Postgres) CreateInvite(ctx context.Context, invite *models.Invite) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO invites (token, trip_id, email, expires_at, used, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		invite.Token, invite.TripID, invite.Email, invite.ExpiresAt, invite.Used, invite.CreatedAt,
	)
	return mapErr(err)
}

func (p *Postgres) GetInvite(ctx context.Context, token uuid.UUID) (*models.Invite, error) {
	var inv models.Invite
	err := p.pool.QueryRow(ctx,
		`SELECT token, trip_id, email, expires_at, used, created_at FROM invites WHERE token = $1`, token).Scan(
		&inv.Token, &inv.TripID, &inv.Email, &inv.ExpiresAt, &inv.Used, &inv.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &inv, nil
}

// AcceptInvite consumes the token and records the membership atomically.
// The WHERE used = FALSE guard makes the token single-use even under
// concurrent accepts; a second accept maps to ErrConflict.
func (p *Postgres) AcceptInvite(ctx context.Context, token uuid.UUID, member *models.TripMember, activity *models.Activity) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE invites SET used = TRUE WHERE token = $1 AND used = FALSE`, token)
		if err != nil {
			return mapErr(err)
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrConflict
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO trip_members (trip_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`,
			member.TripID, member.UserID, member.Role, member.JoinedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		return insertActivity(ctx, tx, activity)
	})
}
