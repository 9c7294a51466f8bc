package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*Table)(nil)

// Table provides access to the transactions table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

var transactionColumns = []any{
	"id", "title", "amount", "category", "label",
	"date", "budget_id", "created_by", "created_date",
}

// FindByID retrieves a transaction by primary key. Returns (nil, nil) when absent.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns the persisted row.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions",
			"title", "amount", "category", "label",
			"date", "budget_id", "created_by", "created_date",
		),
		im.Values(psql.Arg(
			create.Title, create.Amount, create.Category, create.Label,
			create.Date, create.BudgetID, create.CreatedBy, create.CreatedDate,
		)),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update writes the non-nil patch fields and returns the updated row.
// Returns (nil, nil) when the row no longer exists.
func (t *Table) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
	}
	if update.Title != nil {
		queryMods = append(queryMods, um.SetCol("title").ToArg(*update.Title))
	}
	if update.Amount != nil {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(*update.Amount))
	}
	if update.Category != nil {
		queryMods = append(queryMods, um.SetCol("category").ToArg(*update.Category))
	}
	if update.Label != nil {
		queryMods = append(queryMods, um.SetCol("label").ToArg(*update.Label))
	}
	if update.Date != nil {
		queryMods = append(queryMods, um.SetCol("date").ToArg(*update.Date))
	}
	if update.BudgetID != nil {
		queryMods = append(queryMods, um.SetCol("budget_id").ToArg(*update.BudgetID))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(transactionColumns...),
	)

	q := psql.Update(queryMods...)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Delete removes a transaction by primary key. Deleting a missing row is not
// an error.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns transactions matching the filter.
func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
	}

	var whereMods []mods.Where[*dialect.SelectQuery]
	if len(filter.BudgetIDs) > 0 {
		whereMods = append(whereMods, sm.Where(psql.Quote("budget_id").In(psql.Arg(uuidArgs(filter.BudgetIDs)...))))
	}
	if filter.CreatedBy != "" {
		whereMods = append(whereMods, sm.Where(psql.Quote("created_by").EQ(psql.Arg(filter.CreatedBy))))
	}
	if len(filter.Categories) > 0 {
		whereMods = append(whereMods, sm.Where(psql.Quote("category").In(psql.Arg(stringArgs(filter.Categories)...))))
	}
	if len(filter.Labels) > 0 {
		whereMods = append(whereMods, sm.Where(psql.Quote("label").In(psql.Arg(stringArgs(filter.Labels)...))))
	}
	if filter.MinAmount != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("amount").GTE(psql.Arg(*filter.MinAmount))))
	}
	if filter.MaxAmount != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("amount").LTE(psql.Arg(*filter.MaxAmount))))
	}
	if len(whereMods) == 1 {
		queryMods = append(queryMods, whereMods[0])
	} else if len(whereMods) > 1 {
		queryMods = append(queryMods, psql.WhereAnd(whereMods...))
	}

	if filter.OrderByDateDesc {
		queryMods = append(queryMods, sm.OrderBy(psql.Quote("date")).Desc())
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Count returns the number of transactions across the given budgets.
func (t *Table) Count(ctx context.Context, budgetIDs []uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("budget_id").In(psql.Arg(uuidArgs(budgetIDs)...))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// MaxAmount returns the largest transaction amount across the given budgets,
// or nil when they have no transactions.
func (t *Table) MaxAmount(ctx context.Context, budgetIDs []uuid.UUID) (*decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns("amount"),
		sm.From("transactions"),
		sm.Where(psql.Quote("budget_id").In(psql.Arg(uuidArgs(budgetIDs)...))),
		sm.OrderBy(psql.Quote("amount")).Desc(),
		sm.Limit(1),
	)
	amounts, err := bob.All(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return nil, err
	}
	if len(amounts) == 0 {
		return nil, nil
	}
	return &amounts[0], nil
}

func uuidArgs(ids []uuid.UUID) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
