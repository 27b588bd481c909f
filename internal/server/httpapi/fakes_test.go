package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/cauafjorge/personal-finance-tracker/internal/common"
	"github.com/cauafjorge/personal-finance-tracker/internal/dbx"
	"github.com/cauafjorge/personal-finance-tracker/internal/logging"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/config"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/models"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/repomanager"
	txrepo "github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/transactions"
	usersrepo "github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/users"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/services"
)

// memUsersRepo is an in-memory users store keyed by id with a unique
// email constraint, mirroring the behavior of the SQL implementation.
type memUsersRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *memUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	stored := *u
	stored.CreatedAt = time.Now().UTC()
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored
	return &stored, nil
}

func (r *memUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *memUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *memUsersRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

// memTxRepo is an in-memory ledger with the same ownership and
// ordering semantics as the SQL implementation.
type memTxRepo struct {
	mu   sync.Mutex
	rows []*models.Transaction
}

func (r *memTxRepo) Create(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *tx
	stored.CreatedAt = time.Now().UTC()
	r.rows = append(r.rows, &stored)
	return &stored, nil
}

func (r *memTxRepo) List(_ context.Context, userID string, filter txrepo.ListFilter) ([]*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*models.Transaction
	for _, row := range r.rows {
		if row.UserID != userID {
			continue
		}
		if filter.Kind != "" && row.Kind != filter.Kind {
			continue
		}
		matched = append(matched, row)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *memTxRepo) Delete(_ context.Context, userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memTxRepo) Summarize(_ context.Context, userID string, from, to time.Time) (*txrepo.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := &txrepo.Summary{}
	for _, row := range r.rows {
		if row.UserID != userID || row.Date.Before(from) || !row.Date.Before(to) {
			continue
		}
		switch row.Kind {
		case models.KindIncome:
			sum.TotalIncome = sum.TotalIncome.Add(row.Amount)
		case models.KindExpense:
			sum.TotalExpenses = sum.TotalExpenses.Add(row.Amount)
		}
		sum.Count++
	}
	return sum, nil
}

func (r *memTxRepo) DeleteAllForUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

type memRepoManager struct {
	users *memUsersRepo
	tx    *memTxRepo
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.users }
func (m *memRepoManager) Transactions(dbx.DBTX) txrepo.Repository      { return m.tx }

var _ repomanager.RepositoryManager = (*memRepoManager)(nil)

type testEnv struct {
	server *Server
	users  *memUsersRepo
	tx     *memTxRepo
	mock   sqlmock.Sqlmock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.TokenValidityDuration = time.Hour
	cfg.BcryptCost = bcrypt.MinCost

	rm := &memRepoManager{users: newMemUsersRepo(), tx: &memTxRepo{}}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	us := services.NewUserService(db, rm, cfg)
	ts := services.NewTransactionService(db, rm)

	return &testEnv{
		server: NewServer(cfg, logger, us, ts, db),
		users:  rm.users,
		tx:     rm.tx,
		mock:   mock,
	}
}
