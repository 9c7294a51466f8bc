package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Amount is signed; refunds and
// corrections are stored as negative entries. BudgetID is not checked against
// the budgets table on insert.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	Title       string          `db:"title"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Label       string          `db:"label"`
	Date        time.Time       `db:"date"`
	BudgetID    uuid.UUID       `db:"budget_id"`
	CreatedBy   string          `db:"created_by"`
	CreatedDate time.Time       `db:"created_date"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Title       string
	Amount      decimal.Decimal
	Category    string
	Label       string
	Date        time.Time
	BudgetID    uuid.UUID
	CreatedBy   string
	CreatedDate time.Time
}

// TransactionUpdate is a strict patch: only non-nil fields are written.
type TransactionUpdate struct {
	Title    *string
	Amount   *decimal.Decimal
	Category *string
	Label    *string
	Date     *time.Time
	BudgetID *uuid.UUID
}

// TransactionFilter specifies filters for listing transactions. All supplied
// constraints are combined as a conjunction; omitted ones are not applied.
type TransactionFilter struct {
	BudgetIDs       []uuid.UUID
	CreatedBy       string
	Categories      []string
	Labels          []string
	MinAmount       *decimal.Decimal
	MaxAmount       *decimal.Decimal
	OrderByDateDesc bool
	Limit           int
	Offset          int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	// FindByID returns (nil, nil) when no transaction exists with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context, budgetIDs []uuid.UUID) (int64, error)
	// MaxAmount returns the largest amount across the given budgets, or nil
	// when they have no transactions.
	MaxAmount(ctx context.Context, budgetIDs []uuid.UUID) (*decimal.Decimal, error)
}
