package label

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ILabelTable = (*Table)(nil)

// Table provides access to the labels table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// ListByUser returns the label rows stored for the given user email.
func (t *Table) ListByUser(ctx context.Context, email string) ([]*LabelSet, error) {
	q := psql.Select(
		sm.Columns("id", "user_email", "labels"),
		sm.From("labels"),
		sm.Where(psql.Quote("user_email").EQ(psql.Arg(email))),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[LabelSet]())
	if err != nil {
		return nil, err
	}
	result := make([]*LabelSet, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
