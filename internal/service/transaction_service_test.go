package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/budget"
	"github.com/wisespend/budget-api/internal/storage/transaction"
)

func newTestTransactionService(t *testing.T) (*TransactionService, *budget.MockIBudgetTable, *transaction.MockITransactionTable) {
	t.Helper()
	mockBudgets := budget.NewMockIBudgetTable(t)
	mockTxns := transaction.NewMockITransactionTable(t)
	store := &storage.Storage{Budgets: mockBudgets, Transactions: mockTxns}
	writer := &storage.Writer{Budgets: mockBudgets, Transactions: mockTxns}
	svc := NewTransactionService(store, &fakeProcessor{writer: writer})
	return svc, mockBudgets, mockTxns
}

func dated(amount string, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:     uuid.Must(uuid.NewV4()),
		Amount: decimal.RequireFromString(amount),
		Date:   date,
	}
}

// -- CreateTransaction tests --

func TestCreateTransaction_StampsCreatedDate(t *testing.T) {
	svc, _, mockTxns := newTestTransactionService(t)
	budgetID := uuid.Must(uuid.NewV4())
	created := &transaction.Transaction{ID: uuid.Must(uuid.NewV4()), Title: "Coffee"}

	mockTxns.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.Title == "Coffee" && c.BudgetID == budgetID && !c.CreatedDate.IsZero()
	})).Return(created, nil)

	result, err := svc.CreateTransaction(context.Background(), transaction.TransactionCreate{
		Title:     "Coffee",
		Amount:    decimal.RequireFromString("3.20"),
		Category:  "food",
		Date:      time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		BudgetID:  budgetID,
		CreatedBy: "anna@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, created, result)
}

// -- ListTransactions tests --

func TestListTransactions_NoActiveBudgets(t *testing.T) {
	svc, mockBudgets, _ := newTestTransactionService(t)

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, "anna@example.com", "active").
		Return([]uuid.UUID{}, nil)

	page, err := svc.ListTransactions(context.Background(), "anna@example.com", 1, 10)

	assert.NoError(t, err)
	assert.Empty(t, page.Transactions)
	assert.Nil(t, page.MaxAmount)
	assert.Zero(t, page.TotalCount)
}

func TestListTransactions_PageWindowAndFigures(t *testing.T) {
	svc, mockBudgets, mockTxns := newTestTransactionService(t)
	budgetIDs := []uuid.UUID{uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())}
	maxAmount := decimal.RequireFromString("120.00")

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, "anna@example.com", "active").
		Return(budgetIDs, nil)
	mockTxns.EXPECT().MaxAmount(mock.Anything, budgetIDs).Return(&maxAmount, nil)
	mockTxns.EXPECT().Count(mock.Anything, budgetIDs).Return(int64(25), nil)
	mockTxns.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return len(f.BudgetIDs) == 2 &&
			f.OrderByDateDesc &&
			f.Limit == 10 &&
			f.Offset == 10 // page 2 skips the first page
	})).Return([]*transaction.Transaction{
		dated("9.99", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
	}, nil)

	page, err := svc.ListTransactions(context.Background(), "anna@example.com", 2, 10)

	assert.NoError(t, err)
	assert.Len(t, page.Transactions, 1)
	assert.NotNil(t, page.MaxAmount)
	assert.True(t, page.MaxAmount.Equal(maxAmount))
	assert.Equal(t, int64(25), page.TotalCount)
}

func TestListTransactions_DefaultsPageSize(t *testing.T) {
	svc, mockBudgets, mockTxns := newTestTransactionService(t)
	budgetIDs := []uuid.UUID{uuid.Must(uuid.NewV4())}

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, mock.Anything, mock.Anything).
		Return(budgetIDs, nil)
	mockTxns.EXPECT().MaxAmount(mock.Anything, budgetIDs).Return(nil, nil)
	mockTxns.EXPECT().Count(mock.Anything, budgetIDs).Return(int64(0), nil)
	mockTxns.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == defaultPageSize && f.Offset == 0
	})).Return([]*transaction.Transaction{}, nil)

	page, err := svc.ListTransactions(context.Background(), "anna@example.com", 0, 0)

	assert.NoError(t, err)
	assert.Nil(t, page.MaxAmount, "no transactions means no slider bound")
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockBudgets, _ := newTestTransactionService(t)

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	page, err := svc.ListTransactions(context.Background(), "anna@example.com", 1, 10)

	assert.Error(t, err)
	assert.Nil(t, page)
}

// -- FilterTransactions tests --

func TestFilterTransactions_PassesConjunction(t *testing.T) {
	svc, mockBudgets, mockTxns := newTestTransactionService(t)
	budgetIDs := []uuid.UUID{uuid.Must(uuid.NewV4())}
	minAmount := decimal.RequireFromString("5")
	maxAmount := decimal.RequireFromString("50")

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, "anna@example.com", "active").
		Return(budgetIDs, nil)
	mockTxns.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return len(f.BudgetIDs) == 1 &&
			len(f.Categories) == 2 &&
			len(f.Labels) == 1 &&
			f.MinAmount != nil && f.MinAmount.Equal(minAmount) &&
			f.MaxAmount != nil && f.MaxAmount.Equal(maxAmount)
	})).Return([]*transaction.Transaction{}, nil)

	result, err := svc.FilterTransactions(context.Background(), TransactionFilterInput{
		Email:      "anna@example.com",
		Categories: []string{"food", "travel"},
		Labels:     []string{"x"},
		MinAmount:  &minAmount,
		MaxAmount:  &maxAmount,
	})

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestFilterTransactions_NoActiveBudgets(t *testing.T) {
	svc, mockBudgets, _ := newTestTransactionService(t)

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	result, err := svc.FilterTransactions(context.Background(), TransactionFilterInput{
		Email: "anna@example.com",
	})

	assert.NoError(t, err)
	assert.Empty(t, result)
}

// -- GetUserSpent tests --

func TestGetUserSpent_NoActiveBudgets(t *testing.T) {
	svc, mockBudgets, _ := newTestTransactionService(t)

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, "anna@example.com", "active").
		Return([]uuid.UUID{}, nil)

	window, err := svc.GetUserSpent(context.Background(), "anna@example.com")

	assert.NoError(t, err)
	assert.Nil(t, window, "empty state is a sentinel, not a zero-valued snapshot")
}

func TestGetUserSpent_NoTransactions(t *testing.T) {
	svc, mockBudgets, mockTxns := newTestTransactionService(t)
	budgetIDs := []uuid.UUID{uuid.Must(uuid.NewV4())}

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, mock.Anything, mock.Anything).
		Return(budgetIDs, nil)
	mockTxns.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.CreatedBy == "anna@example.com" && len(f.BudgetIDs) == 1
	})).Return([]*transaction.Transaction{}, nil)

	window, err := svc.GetUserSpent(context.Background(), "anna@example.com")

	assert.NoError(t, err)
	assert.Nil(t, window)
}

func TestGetUserSpent_ClassifiesWindows(t *testing.T) {
	svc, mockBudgets, mockTxns := newTestTransactionService(t)
	budgetIDs := []uuid.UUID{uuid.Must(uuid.NewV4())}

	// Wednesday 2024-01-10; the week runs Sunday 2024-01-07 through
	// Saturday 2024-01-13.
	svc.now = func() time.Time {
		return time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	}

	mockBudgets.EXPECT().ListIDsByUserAndStatus(mock.Anything, mock.Anything, mock.Anything).
		Return(budgetIDs, nil)
	mockTxns.EXPECT().List(mock.Anything, mock.Anything).Return([]*transaction.Transaction{
		dated("10.00", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)),  // today and this week
		dated("5.00", time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)),   // this week only
		dated("20.00", time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)),  // last week
		dated("2.00", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)),    // week start boundary
		dated("-3.00", time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)), // refund today
	}, nil)

	window, err := svc.GetUserSpent(context.Background(), "anna@example.com")

	assert.NoError(t, err)
	assert.NotNil(t, window)
	assert.True(t, window.TotalAmountToday.Equal(decimal.RequireFromString("7.00")))
	assert.True(t, window.TotalAmountThisWeek.Equal(decimal.RequireFromString("14.00")))
}

// -- Update/Delete passthrough tests --

func TestUpdateTransaction_NotFound(t *testing.T) {
	svc, _, mockTxns := newTestTransactionService(t)

	mockTxns.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	title := "Renamed"
	result, err := svc.UpdateTransaction(context.Background(), uuid.Must(uuid.NewV4()), transaction.TransactionUpdate{
		Title: &title,
	})

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestDeleteTransaction_PropagatesError(t *testing.T) {
	svc, _, mockTxns := newTestTransactionService(t)

	mockTxns.EXPECT().Delete(mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	err := svc.DeleteTransaction(context.Background(), uuid.Must(uuid.NewV4()))

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
}
