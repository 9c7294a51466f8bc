package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/wisespend/budget-api/internal/config"
	"github.com/wisespend/budget-api/internal/storage/budget"
	"github.com/wisespend/budget-api/internal/storage/label"
	"github.com/wisespend/budget-api/internal/storage/member"
	"github.com/wisespend/budget-api/internal/storage/transaction"
	"github.com/wisespend/budget-api/internal/storage/user"
)

// Storage aggregates the table clients bound to the shared connection pool.
// Table fields are interfaces so services can be tested against mocks.
type Storage struct {
	DB           *sql.DB
	bdb          bob.DB
	Budgets      budget.IBudgetTable
	Transactions transaction.ITransactionTable
	Users        user.IUserTable
	Members      member.IMemberTable
	Labels       label.ILabelTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)

	return &Storage{
		DB:           db,
		bdb:          bdb,
		Budgets:      budget.NewTable(bdb),
		Transactions: transaction.NewTable(bdb),
		Users:        user.NewTable(bdb),
		Members:      member.NewTable(bdb),
		Labels:       label.NewTable(bdb),
	}
}

// Write opens a transaction and returns a Writer whose tables run inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
