package models

import (
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/money"
)

// TransactionKind is a closed two-value enumeration. The amount itself
// is always non-negative; the kind carries the sign.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Valid reports whether k is one of the two allowed kinds.
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is an income or expense record. UserID is assigned by
// the server at creation time and never changes; every read and delete
// is scoped to it.
type Transaction struct {
	ID          string
	UserID      string
	Title       string
	Amount      money.Money
	Kind        TransactionKind
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}
