// Package transactions provides the PostgreSQL-backed repository for
// per-user transaction persistence and monthly aggregation.
package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/dbx"
	"github.com/cauafjorge/personal-finance-tracker/internal/money"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/models"
)

// PostgresRepository implements transaction storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {

	query :=
		`INSERT INTO transactions (id, user_id, title, amount_cents, kind, category, description, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		tx.ID, tx.UserID, tx.Title, tx.Amount.Cents, string(tx.Kind),
		tx.Category, tx.Description, tx.Date).Scan(&tx.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tx, nil
}

// List returns the user's transactions ordered by transaction date
// descending, insertion order breaking ties. The kind filter is applied
// before offset/limit.
func (r *PostgresRepository) List(ctx context.Context, userID string, filter ListFilter) ([]*models.Transaction, error) {

	query :=
		`SELECT id, user_id, title, amount_cents, kind, category, description, occurred_at, created_at
		 FROM transactions
		 WHERE user_id = $1
		 `
	args := []any{userID}

	if filter.Kind != "" {
		query += ` AND kind = $2`
		args = append(args, string(filter.Kind))
	}

	query += fmt.Sprintf(
		` ORDER BY occurred_at DESC, created_at DESC, id OFFSET $%d LIMIT $%d`,
		len(args)+1, len(args)+2)
	args = append(args, filter.Offset, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		var cents int64
		var kind string
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &cents, &kind,
			&item.Category, &item.Description, &item.Date, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Amount = money.FromCents(cents)
		item.Kind = models.TransactionKind(kind)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the transaction only if it belongs to userID. The two
// failure cases (absent id, foreign owner) are indistinguishable.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (bool, error) {

	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

// Summarize aggregates income, expenses and count for userID over
// [from, to) in one statement, so a concurrent write cannot be half
// counted.
func (r *PostgresRepository) Summarize(ctx context.Context, userID string, from, to time.Time) (*Summary, error) {

	query :=
		`SELECT
		   COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'income'), 0),
		   COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'expense'), 0),
		   COUNT(*)
		 FROM transactions
		 WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		 `

	var incomeCents, expenseCents, count int64
	err := r.db.QueryRowContext(ctx, query, userID, from, to).
		Scan(&incomeCents, &expenseCents, &count)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &Summary{
		TotalIncome:   money.FromCents(incomeCents),
		TotalExpenses: money.FromCents(expenseCents),
		Count:         count,
	}, nil
}

// DeleteAllForUser removes every transaction owned by userID. Called by
// the user service inside the same database transaction that deletes
// the user row.
func (r *PostgresRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	query := `DELETE FROM transactions WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
