package repomanager

import (
	"context"
	"database/sql"

	"github.com/cauafjorge/personal-finance-tracker/internal/dbx"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/transactions"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to an arbitrary DBTX, so
// services can run several repositories inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Transactions(db dbx.DBTX) transactions.Repository
}
