package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/transaction"
)

// CreateTransaction inserts a transaction row. No existence check is made on
// the referenced budget; dangling budget ids are accepted.
type CreateTransaction struct {
	Create *transaction.TransactionCreate

	Result *transaction.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, a.Create)
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}

// UpdateTransaction applies a strict patch. Result stays nil when the row
// does not exist.
type UpdateTransaction struct {
	ID     uuid.UUID
	Update *transaction.TransactionUpdate

	Result *transaction.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Update(ctx, a.ID, a.Update)
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}

// DeleteTransaction removes a transaction by id. Budgets are never
// cascade-deleted, so this is the only delete path for transactions.
type DeleteTransaction struct {
	ID uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, a.ID)
}
