package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*Table)(nil)

// Table provides access to the users table.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

var userColumns = []any{"id", "name", "email", "avatar", "created_date"}

// FindByID retrieves a user by primary key. Returns (nil, nil) when absent.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// FindByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (t *Table) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("email").EQ(psql.Arg(email))))
}

func (t *Table) findOne(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		where,
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// List returns all users.
func (t *Table) List(ctx context.Context) ([]*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
	)
	return t.all(ctx, q)
}

// SearchByName returns users whose name contains the query, case insensitively.
func (t *Table) SearchByName(ctx context.Context, query string) ([]*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From("users"),
		sm.Where(psql.Quote("name").ILike(psql.Arg("%"+query+"%"))),
	)
	return t.all(ctx, q)
}

func (t *Table) all(ctx context.Context, q bob.Query) ([]*User, error) {
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	result := make([]*User, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new user and returns the persisted row.
func (t *Table) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into("users", "name", "email", "avatar", "created_date"),
		im.Values(psql.Arg(create.Name, create.Email, create.Avatar, create.CreatedDate)),
		im.Returning(userColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update writes the non-nil patch fields and returns the updated row.
// Returns (nil, nil) when the row no longer exists.
func (t *Table) Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("users"),
	}
	if update.Name != nil {
		queryMods = append(queryMods, um.SetCol("name").ToArg(*update.Name))
	}
	if update.Email != nil {
		queryMods = append(queryMods, um.SetCol("email").ToArg(*update.Email))
	}
	if update.Avatar != nil {
		queryMods = append(queryMods, um.SetCol("avatar").ToArg(*update.Avatar))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(userColumns...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[User]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Delete removes a user by primary key.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("users"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
