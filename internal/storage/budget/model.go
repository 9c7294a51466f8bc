package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record.
type Budget struct {
	ID          uuid.UUID       `db:"id"`
	Name        string          `db:"name"`
	TotalBudget decimal.Decimal `db:"total_budget"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     time.Time       `db:"end_date"`
	CreatedBy   string          `db:"created_by"`
	User        string          `db:"assigned_user"`
	Status      string          `db:"status"`
	CreatedDate time.Time       `db:"created_date"`
	UpdatedDate *time.Time      `db:"updated_date"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	Name        string
	TotalBudget decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	CreatedBy   string
	User        string
	Status      string
	CreatedDate time.Time
}

// BudgetUpdate carries the fully resolved column values for an update.
// Field fallback against the stored row happens in the service layer, so
// every field here is written as-is. CreatedBy is never part of an update.
type BudgetUpdate struct {
	Name        string
	TotalBudget decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	User        string
	Status      string
	UpdatedDate time.Time
}

// IBudgetTable defines the interface for budget storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	// FindByID returns (nil, nil) when no budget exists with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	ListByUserAndStatus(ctx context.Context, email, status string) ([]*Budget, error)
	ListIDsByUserAndStatus(ctx context.Context, email, status string) ([]uuid.UUID, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) (*Budget, error)
}
