package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	budgetstore "github.com/wisespend/budget-api/internal/storage/budget"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Budget name"`
	TotalBudget string `json:"totalBudget" required:"true" doc:"Decimal allowance"`
	StartDate   string `json:"startDate" required:"true" format:"date-time" doc:"RFC3339 period start"`
	EndDate     string `json:"endDate" required:"true" format:"date-time" doc:"RFC3339 period end"`
	CreatedBy   string `json:"createdBy" required:"true" format:"email" doc:"Creator email"`
	Status      string `json:"status" required:"true" minLength:"1" doc:"Budget status"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Body Budget
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	CreateBudget(ctx context.Context, create budgetstore.BudgetCreate) (*budgetstore.Budget, error)
}

// CreateBudgetHandler handles POST /budget/create.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/budget/create",
		Summary:       "Create budget",
		Description:   "Creates a new budget assigned to its creator.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateBudgetInput parses the API input into a storage create. The
// assigned user and creation date are filled in by the service.
func parseCreateBudgetInput(input *CreateBudgetInput) (*budgetstore.BudgetCreate, error) {
	totalBudget, err := decimal.NewFromString(input.Body.TotalBudget)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid totalBudget", err)
	}
	startDate, err := time.Parse(time.RFC3339, input.Body.StartDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}
	endDate, err := time.Parse(time.RFC3339, input.Body.EndDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
	}

	return &budgetstore.BudgetCreate{
		Name:        input.Body.Name,
		TotalBudget: totalBudget,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   input.Body.CreatedBy,
		Status:      input.Body.Status,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	create, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	row, err := h.BudgetService.CreateBudget(ctx, *create)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create budget", err)
	}

	return &CreateBudgetOutput{Body: fromRow(row)}, nil
}
