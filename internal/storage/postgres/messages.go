package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/models"
)

func (p *Postgres) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO chat_messages (id, trip_id, user_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.TripID, msg.UserID, msg.Content, msg.CreatedAt,
	)
	return mapErr(err)
}

// ListMessages returns at most limit of the trip's newest messages in
// chronological order. The inner query selects the newest rows; the outer
// flips them back to oldest-first for display.
func (p *Postgres) ListMessages(ctx context.Context, tripID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, trip_id, user_id, content, created_at, name, email, profile_image_url FROM (
			SELECT m.id, m.trip_id, m.user_id, m.content, m.created_at,
			       u.name, u.email, u.profile_image_url
			  FROM chat_messages m
			  JOIN users u ON u.id = m.user_id
			 WHERE m.trip_id = $1
			 ORDER BY m.created_at DESC
			 LIMIT $2
		 ) newest
		 ORDER BY created_at ASC`, tripID, limit)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.TripID, &m.UserID, &m.Content, &m.CreatedAt, &m.User.Name, &m.User.Email, &m.User.ProfileImageURL); err != nil {
			return nil, mapErr(err)
		}
		m.User.ID = m.UserID
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
