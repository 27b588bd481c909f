package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/common"
	"github.com/cauafjorge/personal-finance-tracker/internal/money"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/models"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/repomanager"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/transactions"
	"github.com/google/uuid"
)

const (
	// DefaultPageSize is used when the client does not ask for a limit.
	DefaultPageSize = 50
	// MaxPageSize caps the page size no matter what the client asks for.
	MaxPageSize = 100
)

// CreateTransactionParams carries the client-supplied fields of a new
// transaction. The owner is never part of it; it is assigned
// server-side from the authenticated identity.
type CreateTransactionParams struct {
	Title       string
	Amount      money.Money
	Kind        models.TransactionKind
	Category    string
	Description string
	Date        time.Time
}

// MonthlySummary aggregates one calendar month of one user.
type MonthlySummary struct {
	TotalIncome   money.Money
	TotalExpenses money.Money
	Balance       money.Money
	Count         int64
}

// TransactionService implements the ledger and aggregation operations.
// Every method is scoped to an owner id resolved by the authentication
// gate; there is no path that reads across owners.
type TransactionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTransactionService(db *sql.DB, m repomanager.RepositoryManager) *TransactionService {
	return &TransactionService{db: db, repomanager: m}
}

// Create validates the fields and persists a transaction owned by
// userID. Invalid input wraps common.ErrorValidation.
func (s *TransactionService) Create(ctx context.Context, userID string, p CreateTransactionParams) (*models.Transaction, error) {
	if !p.Kind.Valid() {
		return nil, fmt.Errorf("%w: kind must be income or expense", common.ErrorValidation)
	}
	if p.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", common.ErrorValidation)
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if strings.TrimSpace(p.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", common.ErrorValidation)
	}
	if p.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", common.ErrorValidation)
	}

	tx := &models.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(p.Title),
		Amount:      p.Amount,
		Kind:        p.Kind,
		Category:    strings.TrimSpace(p.Category),
		Description: p.Description,
		Date:        p.Date,
	}

	created, err := s.repomanager.Transactions(s.db).Create(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}
	return created, nil
}

// List returns a page of the user's transactions, newest transaction
// date first. The limit is clamped to MaxPageSize; zero means
// DefaultPageSize. Filtering by kind happens before pagination.
func (s *TransactionService) List(ctx context.Context, userID string, offset, limit int, kind models.TransactionKind) ([]*models.Transaction, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", common.ErrorValidation)
	}
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: kind must be income or expense", common.ErrorValidation)
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	result, err := s.repomanager.Transactions(s.db).List(ctx, userID, transactions.ListFilter{
		Offset: offset,
		Limit:  limit,
		Kind:   kind,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	return result, nil
}

// Delete removes the transaction when it exists and belongs to userID.
// It reports false otherwise, without revealing which case occurred.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) (bool, error) {
	ok, err := s.repomanager.Transactions(s.db).Delete(ctx, userID, id)
	if err != nil {
		return false, fmt.Errorf("error deleting transaction: %w", err)
	}
	return ok, nil
}

// MonthlySummary aggregates the user's transactions whose date falls in
// [year-month-01, next-month-01) UTC. A month with no transactions
// yields an all-zero summary.
func (s *TransactionService) MonthlySummary(ctx context.Context, userID string, year, month int) (*MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be in 1..12", common.ErrorValidation)
	}
	if year < 1 {
		return nil, fmt.Errorf("%w: year must be positive", common.ErrorValidation)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	sum, err := s.repomanager.Transactions(s.db).Summarize(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error summarizing month: %w", err)
	}

	return &MonthlySummary{
		TotalIncome:   sum.TotalIncome,
		TotalExpenses: sum.TotalExpenses,
		Balance:       sum.TotalIncome.Sub(sum.TotalExpenses),
		Count:         sum.Count,
	}, nil
}
