package service

import (
	"github.com/shopspring/decimal"

	"github.com/wisespend/budget-api/internal/storage/transaction"
)

// TransactionPage is one page of a user's transactions, together with the
// figures the dashboard needs to render it: the largest amount across the
// user's active budgets (range-slider upper bound, nil when there are no
// transactions) and the total match count. The three figures come from
// separate queries and are not a consistent snapshot.
type TransactionPage struct {
	Transactions []*transaction.Transaction
	MaxAmount    *decimal.Decimal
	TotalCount   int64
}

// TransactionFilterInput is the search input for a user's transactions.
// Supplied constraints are combined as a conjunction; nil/empty ones are
// skipped.
type TransactionFilterInput struct {
	Email      string
	Categories []string
	Labels     []string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// SpentWindow is the rolling spend snapshot for a user. The two windows may
// overlap: spend from today counts in both.
type SpentWindow struct {
	TotalAmountToday    decimal.Decimal
	TotalAmountThisWeek decimal.Decimal
}
