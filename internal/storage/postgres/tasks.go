package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
)

func (p *Postgres) CreateTask(ctx context.Context, task *models.Task) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO tasks (id, trip_id, title, assigned_to_id, due_date, completed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		task.ID, task.TripID, task.Title, task.AssignedToID, task.DueDate, task.Completed, task.CreatedAt,
	)
	return mapErr(err)
}

func (p *Postgres) GetTask(ctx context.Context, tripID, taskID uuid.UUID) (*models.Task, error) {
	tasks, err := p.queryTasks(ctx, `WHERE t.id = $1 AND t.trip_id = $2`, taskID, tripID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, storage.ErrNotFound
	}
	return &tasks[0], nil
}

func (p *Postgres) ListTasks(ctx context.Context, tripID uuid.UUID) ([]models.Task, error) {
	return p.queryTasks(ctx, `WHERE t.trip_id = $1`, tripID)
}

func (p *Postgres) queryTasks(ctx context.Context, where string, args ...any) ([]models.Task, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT t.id, t.trip_id, t.title, t.assigned_to_id, t.due_date, t.completed, t.created_at,
		        u.name, u.email
		   FROM tasks t
		   LEFT JOIN users u ON u.id = t.assigned_to_id
		  `+where+`
		  ORDER BY t.created_at DESC`, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		var name, email *string
		if err := rows.Scan(&t.ID, &t.TripID, &t.Title, &t.AssignedToID, &t.DueDate, &t.Completed, &t.CreatedAt, &name, &email); err != nil {
			return nil, mapErr(err)
		}
		if t.AssignedToID != nil && name != nil && email != nil {
			t.AssignedTo = &models.UserSummary{ID: *t.AssignedToID, Name: *name, Email: *email}
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateTask persists task changes; a non-nil activity (task completion)
// is appended in the same transaction.
func (p *Postgres) UpdateTask(ctx context.Context, task *models.Task, activity *models.Activity) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE tasks
			    SET title = $1, assigned_to_id = $2, due_date = $3, completed = $4
			  WHERE id = $5 AND trip_id = $6`,
			task.Title, task.AssignedToID, task.DueDate, task.Completed, task.ID, task.TripID,
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

func (p *Postgres) DeleteTask(ctx context.Context, tripID, taskID uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND trip_id = $2`, taskID, tripID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
