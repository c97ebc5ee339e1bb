package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
)

// CreateUser inserts a new account. Duplicate emails map to ErrConflict.
func (p *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, profile_image_url, pix_key, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.ProfileImageURL, user.PixKey, user.CreatedAt, user.UpdatedAt,
	)
	return mapErr(err)
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return p.scanUser(ctx, `SELECT id, name, email, password_hash, profile_image_url, pix_key, created_at, updated_at
		 FROM users WHERE email = $1`, email)
}

func (p *Postgres) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return p.scanUser(ctx, `SELECT id, name, email, password_hash, profile_image_url, pix_key, created_at, updated_at
		 FROM users WHERE id = $1`, id)
}

func (p *Postgres) scanUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := p.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.ProfileImageURL, &u.PixKey, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// UpdateUser persists profile changes, including a rehashed password.
func (p *Postgres) UpdateUser(ctx context.Context, user *models.User) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE users
		    SET name = $1, password_hash = $2, profile_image_url = $3, pix_key = $4, updated_at = $5
		  WHERE id = $6`,
		user.Name, user.PasswordHash, user.ProfileImageURL, user.PixKey, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
