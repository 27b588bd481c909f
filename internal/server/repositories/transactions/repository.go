package transactions

import (
	"context"
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/money"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/models"
)

// ListFilter narrows and pages a per-user listing. Kind is optional;
// an empty value means both kinds.
type ListFilter struct {
	Offset int
	Limit  int
	Kind   models.TransactionKind
}

// Summary holds the aggregates for one calendar month of one user.
type Summary struct {
	TotalIncome   money.Money
	TotalExpenses money.Money
	Count         int64
}

type Repository interface {
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	List(ctx context.Context, userID string, filter ListFilter) ([]*models.Transaction, error)
	// Delete removes the transaction only when it belongs to userID.
	// Absent and non-owned ids both report false.
	Delete(ctx context.Context, userID, id string) (bool, error)
	// Summarize aggregates all transactions of userID in [from, to)
	// within a single statement, so the result is one consistent read.
	Summarize(ctx context.Context, userID string, from, to time.Time) (*Summary, error)
	DeleteAllForUser(ctx context.Context, userID string) error
}
