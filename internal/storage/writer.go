package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/wisespend/budget-api/internal/storage/budget"
	"github.com/wisespend/budget-api/internal/storage/member"
	"github.com/wisespend/budget-api/internal/storage/transaction"
	"github.com/wisespend/budget-api/internal/storage/user"
)

// Writer bundles table clients bound to a single transaction.
type Writer struct {
	tx           bob.Tx
	Budgets      budget.IBudgetTable
	Transactions transaction.ITransactionTable
	Users        user.IUserTable
	Members      member.IMemberTable
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:           tx,
		Budgets:      budget.NewTable(tx),
		Transactions: transaction.NewTable(tx),
		Users:        user.NewTable(tx),
		Members:      member.NewTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
