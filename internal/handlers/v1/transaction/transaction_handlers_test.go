package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wisespend/budget-api/internal/service"
	txnstore "github.com/wisespend/budget-api/internal/storage/transaction"
)

// mockTransactionService is a mock for the handler consumer interfaces.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, create txnstore.TransactionCreate) (*txnstore.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*txnstore.Transaction), args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, email string, page, count int) (*service.TransactionPage, error) {
	args := m.Called(ctx, email, page, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransactionPage), args.Error(1)
}

func (m *mockTransactionService) FilterTransactions(ctx context.Context, input service.TransactionFilterInput) ([]*txnstore.Transaction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*txnstore.Transaction), args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*txnstore.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*txnstore.Transaction), args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, update txnstore.TransactionUpdate) (*txnstore.Transaction, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*txnstore.Transaction), args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTransactionService) GetUserSpent(ctx context.Context, email string) (*service.SpentWindow, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SpentWindow), args.Error(1)
}

func makeStoredTxn() *txnstore.Transaction {
	return &txnstore.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       "Coffee",
		Amount:      decimal.RequireFromString("3.20"),
		Category:    "food",
		Label:       "morning",
		Date:        time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		BudgetID:    uuid.Must(uuid.NewV4()),
		CreatedBy:   "anna@example.com",
		CreatedDate: time.Date(2024, 1, 10, 9, 0, 1, 0, time.UTC),
	}
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	stored := makeStoredTxn()
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(c txnstore.TransactionCreate) bool {
		return c.Title == "Coffee" &&
			c.Amount.Equal(decimal.RequireFromString("3.20")) &&
			c.BudgetID == stored.BudgetID
	})).Return(stored, nil)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(mockSvc).Register(api)

	resp := api.Post("/txn/create", CreateTransactionBody{
		Title:     "Coffee",
		Amount:    "3.20",
		Category:  "food",
		Label:     "morning",
		Date:      "2024-01-10T09:00:00Z",
		BudgetID:  stored.BudgetID.String(),
		CreatedBy: "anna@example.com",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, stored.ID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(mockSvc).Register(api)

	resp := api.Post("/txn/create", CreateTransactionBody{
		Title:     "Coffee",
		Amount:    "not-a-decimal",
		Category:  "food",
		Date:      "2024-01-10T09:00:00Z",
		BudgetID:  uuid.Must(uuid.NewV4()).String(),
		CreatedBy: "anna@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	stored := makeStoredTxn()
	maxAmount := decimal.RequireFromString("120")
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, "anna@example.com", 2, 10).
		Return(&service.TransactionPage{
			Transactions: []*txnstore.Transaction{stored},
			MaxAmount:    &maxAmount,
			TotalCount:   25,
		}, nil)

	_, api := humatest.New(t)
	NewListTransactionsHandler(mockSvc).Register(api)

	resp := api.Get("/txn/all/anna@example.com/2/10")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Txns, 1)
	assert.NotNil(t, body.Max)
	assert.Equal(t, "120", *body.Max)
	assert.Equal(t, int64(25), body.Count)
}

func TestHTTP_ListTransactions_EmptyPage(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.TransactionPage{Transactions: []*txnstore.Transaction{}}, nil)

	_, api := humatest.New(t)
	NewListTransactionsHandler(mockSvc).Register(api)

	resp := api.Get("/txn/all/anna@example.com/1/10")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Txns)
	assert.Nil(t, body.Max)
	assert.Zero(t, body.Count)
}

func TestHTTP_FilterTransactions_Success(t *testing.T) {
	stored := makeStoredTxn()
	mockSvc := new(mockTransactionService)
	mockSvc.On("FilterTransactions", mock.Anything, mock.MatchedBy(func(f service.TransactionFilterInput) bool {
		return f.Email == "anna@example.com" &&
			len(f.Categories) == 1 &&
			f.MinAmount != nil && f.MinAmount.Equal(decimal.RequireFromString("1")) &&
			f.MaxAmount == nil
	})).Return([]*txnstore.Transaction{stored}, nil)

	_, api := humatest.New(t)
	NewFilterTransactionsHandler(mockSvc).Register(api)

	resp := api.Post("/txn/filter", FilterTransactionsBody{
		Email:      "anna@example.com",
		Categories: []string{"food"},
		MinAmount:  "1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransaction", mock.Anything, mock.Anything).Return(nil, nil)

	_, api := humatest.New(t)
	NewGetTransactionHandler(mockSvc).Register(api)

	resp := api.Get("/txn/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	stored := makeStoredTxn()
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, stored.ID, mock.MatchedBy(func(u txnstore.TransactionUpdate) bool {
		return u.Title != nil && *u.Title == "Espresso" && u.Amount == nil
	})).Return(stored, nil)

	_, api := humatest.New(t)
	NewUpdateTransactionHandler(mockSvc).Register(api)

	title := "Espresso"
	resp := api.Put("/txn/update/"+stored.ID.String(), UpdateTransactionBody{Title: &title})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, id).Return(nil)

	_, api := humatest.New(t)
	NewDeleteTransactionHandler(mockSvc).Register(api)

	resp := api.Delete("/txn/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
}

func TestHTTP_DeleteTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewDeleteTransactionHandler(mockSvc).Register(api)

	resp := api.Delete("/txn/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_UserSpent_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetUserSpent", mock.Anything, "anna@example.com").
		Return(&service.SpentWindow{
			TotalAmountToday:    decimal.RequireFromString("7"),
			TotalAmountThisWeek: decimal.RequireFromString("14"),
		}, nil)

	_, api := humatest.New(t)
	NewUserSpentHandler(mockSvc).Register(api)

	resp := api.Get("/txn/spent/anna@example.com")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body UserSpentResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "7", body.TotalAmountToday)
	assert.Equal(t, "14", body.TotalAmountThisWeek)
	assert.Empty(t, body.Message)
}

func TestHTTP_UserSpent_NothingToSum(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetUserSpent", mock.Anything, mock.Anything).Return(nil, nil)

	_, api := humatest.New(t)
	NewUserSpentHandler(mockSvc).Register(api)

	resp := api.Get("/txn/spent/anna@example.com")

	// Empty state is an informational success, not an error.
	assert.Equal(t, http.StatusOK, resp.Code)
	var body UserSpentResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
	assert.Empty(t, body.TotalAmountToday)
}

func TestHTTP_GetTransaction_InvalidID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	_, api := humatest.New(t)
	NewGetTransactionHandler(mockSvc).Register(api)

	resp := api.Get(fmt.Sprintf("/txn/%s", "not-a-uuid"))

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetTransaction")
}
