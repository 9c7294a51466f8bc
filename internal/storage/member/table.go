package member

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IMemberTable = (*Table)(nil)

// Table provides access to the members table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

var memberColumns = []any{"id", "user_email", "member_name", "member_avatar"}

// Insert creates a new member and returns the persisted row.
func (t *Table) Insert(ctx context.Context, create *MemberCreate) (*Member, error) {
	q := psql.Insert(
		im.Into("members", "user_email", "member_name", "member_avatar"),
		im.Values(psql.Arg(create.User, create.MemberName, create.MemberAvatar)),
		im.Returning(memberColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Member]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByUser returns all members registered under the given user email.
func (t *Table) ListByUser(ctx context.Context, email string) ([]*Member, error) {
	q := psql.Select(
		sm.Columns(memberColumns...),
		sm.From("members"),
		sm.Where(psql.Quote("user_email").EQ(psql.Arg(email))),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Member]())
	if err != nil {
		return nil, err
	}
	result := make([]*Member, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
