package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/wisespend/budget-api/internal/operator"
	"github.com/wisespend/budget-api/internal/operator/actions"
	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/transaction"
)

const defaultPageSize = 10

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor operator.Processor
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor operator.Processor) *TransactionService {
	return &TransactionService{
		storage:   store,
		processor: processor,
		now:       time.Now,
	}
}

// CreateTransaction persists a new transaction. The referenced budget is not
// checked for existence.
func (s *TransactionService) CreateTransaction(ctx context.Context, create transaction.TransactionCreate) (*transaction.Transaction, error) {
	create.CreatedDate = s.now()

	action := &actions.CreateTransaction{Create: &create}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// GetTransaction retrieves a transaction by id. Returns (nil, nil) when absent.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return s.storage.Transactions.FindByID(ctx, id)
}

// UpdateTransaction applies a strict patch. Returns (nil, nil) when the
// transaction does not exist.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, update transaction.TransactionUpdate) (*transaction.Transaction, error) {
	action := &actions.UpdateTransaction{ID: id, Update: &update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// DeleteTransaction removes a transaction by id.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{ID: id})
}

// ListTransactions returns one page of the user's transactions across their
// active budgets, ordered by date descending. Pages are 1-based; a
// non-positive count falls back to the default page size. The max/count/page
// queries run sequentially without a shared snapshot, which is acceptable for
// a read-mostly dashboard.
func (s *TransactionService) ListTransactions(ctx context.Context, email string, page, count int) (*TransactionPage, error) {
	if count <= 0 {
		count = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	budgetIDs, err := s.storage.Budgets.ListIDsByUserAndStatus(ctx, email, activeBudgetStatus)
	if err != nil {
		return nil, err
	}
	if len(budgetIDs) == 0 {
		return &TransactionPage{Transactions: []*transaction.Transaction{}}, nil
	}

	maxAmount, err := s.storage.Transactions.MaxAmount(ctx, budgetIDs)
	if err != nil {
		return nil, err
	}

	totalCount, err := s.storage.Transactions.Count(ctx, budgetIDs)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		BudgetIDs:       budgetIDs,
		OrderByDateDesc: true,
		Limit:           count,
		Offset:          (page - 1) * count,
	})
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Transactions: rows,
		MaxAmount:    maxAmount,
		TotalCount:   totalCount,
	}, nil
}

// FilterTransactions returns the user's transactions matching the supplied
// constraints, scoped to their active budgets. Returns an empty slice when
// the user has no active budgets.
func (s *TransactionService) FilterTransactions(ctx context.Context, input TransactionFilterInput) ([]*transaction.Transaction, error) {
	budgetIDs, err := s.storage.Budgets.ListIDsByUserAndStatus(ctx, input.Email, activeBudgetStatus)
	if err != nil {
		return nil, err
	}
	if len(budgetIDs) == 0 {
		return []*transaction.Transaction{}, nil
	}

	return s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		BudgetIDs:  budgetIDs,
		Categories: input.Categories,
		Labels:     input.Labels,
		MinAmount:  input.MinAmount,
		MaxAmount:  input.MaxAmount,
	})
}

// GetUserSpent computes the user's rolling spend for today and for the
// current week over their own transactions in active budgets. Returns
// (nil, nil) when the user has no active budgets or no transactions in them:
// that empty state is distinct from a zero-valued snapshot.
func (s *TransactionService) GetUserSpent(ctx context.Context, email string) (*SpentWindow, error) {
	budgetIDs, err := s.storage.Budgets.ListIDsByUserAndStatus(ctx, email, activeBudgetStatus)
	if err != nil {
		return nil, err
	}
	if len(budgetIDs) == 0 {
		return nil, nil
	}

	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		BudgetIDs: budgetIDs,
		CreatedBy: email,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	now := s.now()
	year, month, day := now.Date()
	todayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Millisecond)
	// The week starts on the most recent weekday-0 day (Sunday).
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)

	window := &SpentWindow{}
	for _, row := range rows {
		if inWindow(row.Date, todayStart, todayEnd) {
			window.TotalAmountToday = window.TotalAmountToday.Add(row.Amount)
		}
		if inWindow(row.Date, weekStart, weekEnd) {
			window.TotalAmountThisWeek = window.TotalAmountThisWeek.Add(row.Amount)
		}
	}
	return window, nil
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
