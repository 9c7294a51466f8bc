package budget

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IBudgetTable = (*Table)(nil)

// Table provides access to the budgets table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

var budgetColumns = []any{
	"id", "name", "total_budget", "start_date", "end_date",
	"created_by", "assigned_user", "status", "created_date", "updated_date",
}

// FindByID retrieves a budget by primary key. Returns (nil, nil) when absent.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByUserAndStatus returns all budgets assigned to the given user with
// the given status.
func (t *Table) ListByUserAndStatus(ctx context.Context, email, status string) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From("budgets"),
		psql.WhereAnd(
			sm.Where(psql.Quote("assigned_user").EQ(psql.Arg(email))),
			sm.Where(psql.Quote("status").EQ(psql.Arg(status))),
		),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// ListIDsByUserAndStatus returns only the ids of matching budgets. Used to
// scope transaction queries without pulling whole rows.
func (t *Table) ListIDsByUserAndStatus(ctx context.Context, email, status string) ([]uuid.UUID, error) {
	q := psql.Select(
		sm.Columns("id"),
		sm.From("budgets"),
		psql.WhereAnd(
			sm.Where(psql.Quote("assigned_user").EQ(psql.Arg(email))),
			sm.Where(psql.Quote("status").EQ(psql.Arg(status))),
		),
	)
	return bob.All(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// Insert creates a new budget and returns the persisted row.
func (t *Table) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into("budgets",
			"name", "total_budget", "start_date", "end_date",
			"created_by", "assigned_user", "status", "created_date",
		),
		im.Values(psql.Arg(
			create.Name, create.TotalBudget, create.StartDate, create.EndDate,
			create.CreatedBy, create.User, create.Status, create.CreatedDate,
		)),
		im.Returning(budgetColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update writes the resolved column values and returns the updated row.
// Returns (nil, nil) when the row no longer exists.
func (t *Table) Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) (*Budget, error) {
	q := psql.Update(
		um.Table("budgets"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("total_budget").ToArg(update.TotalBudget),
		um.SetCol("start_date").ToArg(update.StartDate),
		um.SetCol("end_date").ToArg(update.EndDate),
		um.SetCol("assigned_user").ToArg(update.User),
		um.SetCol("status").ToArg(update.Status),
		um.SetCol("updated_date").ToArg(update.UpdatedDate),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(budgetColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
