package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/wisespend/budget-api/internal/service"
)

// GetBudgetInput is the Huma input for fetching a budget.
type GetBudgetInput struct {
	ID string `path:"id" format:"uuid" doc:"Budget UUID"`
}

// GetBudgetOutput is the Huma output for fetching a budget.
type GetBudgetOutput struct {
	Body Budget
}

// budgetGetter is the interface for fetching one budget with derived spend.
type budgetGetter interface {
	GetBudget(ctx context.Context, id uuid.UUID) (*service.BudgetWithSpend, error)
}

// GetBudgetHandler handles GET /budget/{id}.
type GetBudgetHandler struct {
	BudgetService budgetGetter
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

// Register registers the get budget endpoint with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/budget/{id}",
		Summary:     "Get budget",
		Description: "Returns one budget with its derived spent amount.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	row, err := h.BudgetService.GetBudget(ctx, id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get budget", err)
	}
	if row == nil {
		return nil, huma.NewError(http.StatusNotFound, "budget not found")
	}

	return &GetBudgetOutput{Body: fromRowWithSpend(row)}, nil
}
