package budget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wisespend/budget-api/internal/service"
	budgetstore "github.com/wisespend/budget-api/internal/storage/budget"
)

// mockBudgetService is a mock for the handler consumer interfaces.
type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) ListBudgets(ctx context.Context, email, status string) ([]*service.BudgetWithSpend, error) {
	args := m.Called(ctx, email, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.BudgetWithSpend), args.Error(1)
}

func (m *mockBudgetService) GetBudget(ctx context.Context, id uuid.UUID) (*service.BudgetWithSpend, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BudgetWithSpend), args.Error(1)
}

func (m *mockBudgetService) CreateBudget(ctx context.Context, create budgetstore.BudgetCreate) (*budgetstore.Budget, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgetstore.Budget), args.Error(1)
}

func (m *mockBudgetService) UpdateBudget(ctx context.Context, id uuid.UUID, patch service.BudgetPatch) (*budgetstore.Budget, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgetstore.Budget), args.Error(1)
}

func (m *mockBudgetService) GetBudgetStats(ctx context.Context, id uuid.UUID) (*service.BudgetStats, service.StatsOutcome, error) {
	args := m.Called(ctx, id)
	stats, _ := args.Get(0).(*service.BudgetStats)
	return stats, args.Get(1).(service.StatsOutcome), args.Error(2)
}

func makeStoredBudget() *budgetstore.Budget {
	return &budgetstore.Budget{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        "Groceries",
		TotalBudget: decimal.RequireFromString("300"),
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		CreatedBy:   "anna@example.com",
		User:        "anna@example.com",
		Status:      "active",
		CreatedDate: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_ListBudgets_Success(t *testing.T) {
	stored := makeStoredBudget()
	mockSvc := new(mockBudgetService)
	mockSvc.On("ListBudgets", mock.Anything, "anna@example.com", "active").
		Return([]*service.BudgetWithSpend{
			{Budget: *stored, SpentAmount: decimal.RequireFromString("42.50")},
		}, nil)

	_, api := humatest.New(t)
	NewListBudgetsHandler(mockSvc).Register(api)

	resp := api.Get("/budget/all/anna@example.com/active")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Budget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, stored.ID.String(), body[0].ID)
	assert.Equal(t, "42.5", body[0].SpentAmount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListBudgets_EmptyList(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("ListBudgets", mock.Anything, mock.Anything, mock.Anything).
		Return([]*service.BudgetWithSpend{}, nil)

	_, api := humatest.New(t)
	NewListBudgetsHandler(mockSvc).Register(api)

	resp := api.Get("/budget/all/anna@example.com/archived")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_ListBudgets_ServiceError(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("ListBudgets", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewListBudgetsHandler(mockSvc).Register(api)

	resp := api.Get("/budget/all/anna@example.com/active")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_GetBudget_Success(t *testing.T) {
	stored := makeStoredBudget()
	mockSvc := new(mockBudgetService)
	mockSvc.On("GetBudget", mock.Anything, stored.ID).
		Return(&service.BudgetWithSpend{Budget: *stored, SpentAmount: decimal.Zero}, nil)

	_, api := humatest.New(t)
	NewGetBudgetHandler(mockSvc).Register(api)

	resp := api.Get("/budget/" + stored.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Budget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Groceries", body.Name)
	assert.Equal(t, "0", body.SpentAmount)
}

func TestHTTP_GetBudget_NotFound(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("GetBudget", mock.Anything, mock.Anything).Return(nil, nil)

	_, api := humatest.New(t)
	NewGetBudgetHandler(mockSvc).Register(api)

	resp := api.Get("/budget/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateBudget_Success(t *testing.T) {
	stored := makeStoredBudget()
	mockSvc := new(mockBudgetService)
	mockSvc.On("CreateBudget", mock.Anything, mock.MatchedBy(func(c budgetstore.BudgetCreate) bool {
		return c.Name == "Groceries" &&
			c.TotalBudget.Equal(decimal.RequireFromString("300")) &&
			c.CreatedBy == "anna@example.com"
	})).Return(stored, nil)

	_, api := humatest.New(t)
	NewCreateBudgetHandler(mockSvc).Register(api)

	resp := api.Post("/budget/create", CreateBudgetBody{
		Name:        "Groceries",
		TotalBudget: "300",
		StartDate:   "2024-01-01T00:00:00Z",
		EndDate:     "2024-01-31T00:00:00Z",
		CreatedBy:   "anna@example.com",
		Status:      "active",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Budget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, stored.ID.String(), body.ID)
	assert.Equal(t, "anna@example.com", body.User)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateBudget_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockBudgetService)

	// Huma schema validation rejects the request before the handler runs.
	_, api := humatest.New(t)
	NewCreateBudgetHandler(mockSvc).Register(api)
	resp := api.Post("/budget/create", CreateBudgetBody{Name: "Groceries"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateBudget")
}

func TestHTTP_CreateBudget_InvalidTotalBudget(t *testing.T) {
	mockSvc := new(mockBudgetService)

	// Amount is a plain string with no Huma format tag, so
	// parseCreateBudgetInput handles validation and returns 400.
	_, api := humatest.New(t)
	NewCreateBudgetHandler(mockSvc).Register(api)
	resp := api.Post("/budget/create", CreateBudgetBody{
		Name:        "Groceries",
		TotalBudget: "not-a-decimal",
		StartDate:   "2024-01-01T00:00:00Z",
		EndDate:     "2024-01-31T00:00:00Z",
		CreatedBy:   "anna@example.com",
		Status:      "active",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateBudget")
}

func TestHTTP_UpdateBudget_Success(t *testing.T) {
	stored := makeStoredBudget()
	mockSvc := new(mockBudgetService)
	mockSvc.On("UpdateBudget", mock.Anything, stored.ID, mock.MatchedBy(func(p service.BudgetPatch) bool {
		// Omitted fields arrive zero-valued so the service keeps stored values.
		return p.Name == "" && p.TotalBudget.Equal(decimal.RequireFromString("500"))
	})).Return(stored, nil)

	_, api := humatest.New(t)
	NewUpdateBudgetHandler(mockSvc).Register(api)

	resp := api.Put("/budget/update/"+stored.ID.String(), UpdateBudgetBody{
		TotalBudget: "500",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body UpdateBudgetResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "update success", body.Message)
	assert.Equal(t, stored.ID.String(), body.Data.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateBudget_NotFound(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("UpdateBudget", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	_, api := humatest.New(t)
	NewUpdateBudgetHandler(mockSvc).Register(api)

	resp := api.Put("/budget/update/"+uuid.Must(uuid.NewV4()).String(), UpdateBudgetBody{
		Name: "Renamed",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_BudgetStats_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockBudgetService)
	mockSvc.On("GetBudgetStats", mock.Anything, id).Return(&service.BudgetStats{
		DatesData: map[string]decimal.Decimal{
			"2024-01-01": decimal.RequireFromString("5"),
		},
		CategoryTxnCount: map[string]service.AmountCount{
			"food": {SumAmount: decimal.RequireFromString("5"), Count: 1},
		},
		LabelTxnCount: map[string]service.AmountCount{
			"": {SumAmount: decimal.RequireFromString("5"), Count: 1},
		},
	}, service.StatsOK, nil)

	_, api := humatest.New(t)
	NewBudgetStatsHandler(mockSvc).Register(api)

	resp := api.Get("/budget/stats/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BudgetStatsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Message)
	assert.Equal(t, "5", body.DatesData["2024-01-01"])
	assert.Equal(t, 1, body.CategoryTxnCount["food"].Count)
	// Unlabeled transactions keep their own bucket under the empty key.
	assert.Equal(t, 1, body.LabelTxnCount[""].Count)
}

func TestHTTP_BudgetStats_BudgetNotFound(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("GetBudgetStats", mock.Anything, mock.Anything).
		Return(nil, service.StatsBudgetNotFound, nil)

	_, api := humatest.New(t)
	NewBudgetStatsHandler(mockSvc).Register(api)

	resp := api.Get("/budget/stats/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_BudgetStats_NoTransactions(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("GetBudgetStats", mock.Anything, mock.Anything).
		Return(nil, service.StatsNoTransactions, nil)

	_, api := humatest.New(t)
	NewBudgetStatsHandler(mockSvc).Register(api)

	resp := api.Get("/budget/stats/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BudgetStatsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
	assert.Empty(t, body.DatesData)
}
