package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/budget"
)

// CreateBudget inserts a fully resolved budget row. The service layer has
// already set the assigned user and created date.
type CreateBudget struct {
	Create *budget.BudgetCreate

	Result *budget.Budget
}

func (a *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Budgets.Insert(ctx, a.Create)
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}

// UpdateBudget writes a fully resolved update. The coalescing merge against
// the stored row happens in the service layer before the action is queued.
// Result stays nil when the row disappeared between the read and the write.
type UpdateBudget struct {
	ID     uuid.UUID
	Update *budget.BudgetUpdate

	Result *budget.Budget
}

func (a *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Budgets.Update(ctx, a.ID, a.Update)
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}
