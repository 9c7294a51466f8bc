package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/wisespend/budget-api/internal/operator"
	"github.com/wisespend/budget-api/internal/operator/actions"
	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/budget"
	"github.com/wisespend/budget-api/internal/storage/transaction"
)

// BudgetService handles budget business logic: CRUD orchestration plus the
// spend aggregation and statistics derivations.
type BudgetService struct {
	storage   *storage.Storage
	processor operator.Processor
	now       func() time.Time
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, processor operator.Processor) *BudgetService {
	return &BudgetService{
		storage:   store,
		processor: processor,
		now:       time.Now,
	}
}

// SpentAmount sums the amounts of all transactions attached to the budget.
// An empty transaction set is a valid zero sum, not an error. Amounts are
// signed, so the total can be negative.
func (s *BudgetService) SpentAmount(ctx context.Context, budgetID uuid.UUID) (decimal.Decimal, error) {
	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		BudgetIDs: []uuid.UUID{budgetID},
	})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total, nil
}

// ListBudgets returns all budgets assigned to the user with the given status,
// each with its spent amount attached. Returns an empty slice when none match.
func (s *BudgetService) ListBudgets(ctx context.Context, email, status string) ([]*BudgetWithSpend, error) {
	rows, err := s.storage.Budgets.ListByUserAndStatus(ctx, email, status)
	if err != nil {
		return nil, err
	}

	result := make([]*BudgetWithSpend, len(rows))
	for i, row := range rows {
		spent, err := s.SpentAmount(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		result[i] = &BudgetWithSpend{Budget: *row, SpentAmount: spent}
	}
	return result, nil
}

// GetBudget retrieves a budget with its spent amount. Returns (nil, nil) when
// no budget exists with the given id.
func (s *BudgetService) GetBudget(ctx context.Context, id uuid.UUID) (*BudgetWithSpend, error) {
	row, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	spent, err := s.SpentAmount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BudgetWithSpend{Budget: *row, SpentAmount: spent}, nil
}

// CreateBudget persists a new budget. The creator is the initial assigned
// user, and the created date is stamped here.
func (s *BudgetService) CreateBudget(ctx context.Context, create budget.BudgetCreate) (*budget.Budget, error) {
	create.User = create.CreatedBy
	create.CreatedDate = s.now()

	action := &actions.CreateBudget{Create: &create}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// UpdateBudget applies the coalescing merge: every zero-valued patch field
// keeps the stored value. CreatedBy is never touched, and the updated date is
// stamped. Returns (nil, nil) when the budget does not exist.
func (s *BudgetService) UpdateBudget(ctx context.Context, id uuid.UUID, patch BudgetPatch) (*budget.Budget, error) {
	existing, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	update := &budget.BudgetUpdate{
		Name:        existing.Name,
		TotalBudget: existing.TotalBudget,
		StartDate:   existing.StartDate,
		EndDate:     existing.EndDate,
		User:        existing.User,
		Status:      existing.Status,
		UpdatedDate: s.now(),
	}
	if patch.Name != "" {
		update.Name = patch.Name
	}
	if !patch.TotalBudget.IsZero() {
		update.TotalBudget = patch.TotalBudget
	}
	if !patch.StartDate.IsZero() {
		update.StartDate = patch.StartDate
	}
	if !patch.EndDate.IsZero() {
		update.EndDate = patch.EndDate
	}
	if patch.User != "" {
		update.User = patch.User
	}
	if patch.Status != "" {
		update.Status = patch.Status
	}

	action := &actions.UpdateBudget{ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// GetBudgetStats aggregates the budget's transactions into category buckets,
// label buckets, and a per-day spend series. The budget's existence is
// re-verified here to guard against a concurrent delete.
func (s *BudgetService) GetBudgetStats(ctx context.Context, id uuid.UUID) (*BudgetStats, StatsOutcome, error) {
	row, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, StatsOK, err
	}
	if row == nil {
		return nil, StatsBudgetNotFound, nil
	}

	txns, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		BudgetIDs: []uuid.UUID{id},
	})
	if err != nil {
		return nil, StatsOK, err
	}
	if len(txns) == 0 {
		return nil, StatsNoTransactions, nil
	}

	stats := &BudgetStats{
		DatesData:        make(map[string]decimal.Decimal),
		CategoryTxnCount: make(map[string]AmountCount),
		LabelTxnCount:    make(map[string]AmountCount),
	}

	// Summation follows the order the store returned the rows; only the date
	// buckets carry an ordering guarantee (via their keys).
	for _, txn := range txns {
		category := stats.CategoryTxnCount[txn.Category]
		category.SumAmount = category.SumAmount.Add(txn.Amount)
		category.Count++
		stats.CategoryTxnCount[txn.Category] = category

		// The empty label is a bucket of its own: unlabeled spend stays
		// visible instead of disappearing from the breakdown.
		label := stats.LabelTxnCount[txn.Label]
		label.SumAmount = label.SumAmount.Add(txn.Amount)
		label.Count++
		stats.LabelTxnCount[txn.Label] = label

		day := txn.Date.UTC().Format("2006-01-02")
		stats.DatesData[day] = stats.DatesData[day].Add(txn.Amount)
	}

	return stats, StatsOK, nil
}
