package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/dbx"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/models"
	txrepo "github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/transactions"
	usersrepo "github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	deleteErr error

	created   *models.User
	deletedID string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeTxRepo struct {
	createErr error
	created   *models.Transaction

	listOut    []*models.Transaction
	listErr    error
	listUserID string
	listFilter txrepo.ListFilter

	deleteOut    bool
	deleteErr    error
	deletedID    string
	deleteUserID string

	summary      *txrepo.Summary
	summarizeErr error
	sumFrom      time.Time
	sumTo        time.Time

	deletedAllFor string
	deleteAllErr  error
}

func (f *fakeTxRepo) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	f.created = tx
	if f.createErr != nil {
		return nil, f.createErr
	}
	return tx, nil
}

func (f *fakeTxRepo) List(ctx context.Context, userID string, filter txrepo.ListFilter) ([]*models.Transaction, error) {
	f.listUserID = userID
	f.listFilter = filter
	return f.listOut, f.listErr
}

func (f *fakeTxRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	f.deleteUserID = userID
	f.deletedID = id
	return f.deleteOut, f.deleteErr
}

func (f *fakeTxRepo) Summarize(ctx context.Context, userID string, from, to time.Time) (*txrepo.Summary, error) {
	f.sumFrom = from
	f.sumTo = to
	if f.summarizeErr != nil {
		return nil, f.summarizeErr
	}
	if f.summary != nil {
		return f.summary, nil
	}
	return &txrepo.Summary{}, nil
}

func (f *fakeTxRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	f.deletedAllFor = userID
	return f.deleteAllErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTxRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error       { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return m.u }
func (m *fakeRepoManager) Transactions(db dbx.DBTX) txrepo.Repository         { return m.t }
