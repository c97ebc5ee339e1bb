package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
)

// CreateExpense inserts the expense, its split rows, and the activity
// entry in one transaction.
func (p *Postgres) CreateExpense(ctx context.Context, expense *models.Expense, activity *models.Activity) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO expenses (id, trip_id, description, amount, date, category, split_method, paid_by_id, proof_image_url, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			expense.ID, expense.TripID, expense.Description, expense.Amount, expense.Date,
			expense.Category, expense.SplitMethod, expense.PaidByID, expense.ProofImageURL, expense.CreatedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		if err := insertSplits(ctx, tx, expense.ID, expense.Splits); err != nil {
			return err
		}
		return insertActivity(ctx, tx, activity)
	})
}

// UpdateExpense rewrites the expense row and recreates its splits
// wholesale (delete-all then re-insert) in one transaction.
func (p *Postgres) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE expenses
			    SET description = $1, amount = $2, date = $3, category = $4, split_method = $5, paid_by_id = $6, proof_image_url = $7
			  WHERE id = $8 AND trip_id = $9`,
			expense.Description, expense.Amount, expense.Date, expense.Category,
			expense.SplitMethod, expense.PaidByID, expense.ProofImageURL, expense.ID, expense.TripID,
		)
		if err != nil {
			return mapErr(err)
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM expense_splits WHERE expense_id = $1`, expense.ID); err != nil {
			return mapErr(err)
		}
		return insertSplits(ctx, tx, expense.ID, expense.Splits)
	})
}

func insertSplits(ctx context.Context, tx pgx.Tx, expenseID uuid.UUID, splits []models.ExpenseSplit) error {
	for _, s := range splits {
		_, err := tx.Exec(ctx,
			`INSERT INTO expense_splits (expense_id, user_id, amount) VALUES ($1, $2, $3)`,
			expenseID, s.UserID, s.Amount,
		)
		if err != nil {
			return mapErr(err)
		}
	}
	return nil
}

func (p *Postgres) DeleteExpense(ctx context.Context, tripID, expenseID uuid.UUID) error {
	tag, err := p.pool.Exec(ctx,
		`DELETE FROM expenses WHERE id = $1 AND trip_id = $2`, expenseID, tripID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (p *Postgres) GetExpense(ctx context.Context, tripID, expenseID uuid.UUID) (*models.Expense, error) {
	expenses, err := p.queryExpenses(ctx,
		`WHERE e.id = $1 AND e.trip_id = $2`, expenseID, tripID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, storage.ErrNotFound
	}
	return &expenses[0], nil
}

// ListExpenses returns a trip's expenses newest first, each with its payer
// and per-participant splits.
func (p *Postgres) ListExpenses(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	return p.queryExpenses(ctx, `WHERE e.trip_id = $1`, tripID)
}

func (p *Postgres) queryExpenses(ctx context.Context, where string, args ...any) ([]models.Expense, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT e.id, e.trip_id, e.description, e.amount, e.date, e.category, e.split_method, e.paid_by_id, e.proof_image_url, e.created_at,
		        u.name, u.email, u.pix_key
		   FROM expenses e
		   JOIN users u ON u.id = e.paid_by_id
		  `+where+`
		  ORDER BY e.date DESC, e.created_at DESC`, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.TripID, &e.Description, &e.Amount, &e.Date, &e.Category, &e.SplitMethod, &e.PaidByID, &e.ProofImageURL, &e.CreatedAt,
			&e.PaidBy.Name, &e.PaidBy.Email, &e.PaidBy.PixKey); err != nil {
			return nil, mapErr(err)
		}
		e.PaidBy.ID = e.PaidByID
		e.Splits = make([]models.ExpenseSplit, 0)
		index[e.ID] = len(expenses)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	if len(expenses) == 0 {
		return expenses, nil
	}

	ids := make([]uuid.UUID, 0, len(expenses))
	for _, e := range expenses {
		ids = append(ids, e.ID)
	}
	splitRows, err := p.pool.Query(ctx,
		`SELECT s.expense_id, s.user_id, s.amount, u.name, u.email
		   FROM expense_splits s
		   JOIN users u ON u.id = s.user_id
		  WHERE s.expense_id = ANY($1)`, ids)
	if err != nil {
		return nil, mapErr(err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var s models.ExpenseSplit
		if err := splitRows.Scan(&s.ExpenseID, &s.UserID, &s.Amount, &s.User.Name, &s.User.Email); err != nil {
			return nil, mapErr(err)
		}
		s.User.ID = s.UserID
		if i, ok := index[s.ExpenseID]; ok {
			expenses[i].Splits = append(expenses[i].Splits, s)
		}
	}
	return expenses, splitRows.Err()
}
