package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/wisespend/budget-api/internal/service"
	budgetstore "github.com/wisespend/budget-api/internal/storage/budget"
)

// UpdateBudgetBody is the request body for updating a budget. Omitted or
// empty fields keep their stored values, so an update cannot clear a field.
type UpdateBudgetBody struct {
	Name        string `json:"name,omitempty" doc:"Budget name"`
	TotalBudget string `json:"totalBudget,omitempty" doc:"Decimal allowance"`
	StartDate   string `json:"startDate,omitempty" format:"date-time" doc:"RFC3339 period start"`
	EndDate     string `json:"endDate,omitempty" format:"date-time" doc:"RFC3339 period end"`
	User        string `json:"user,omitempty" doc:"Assigned user email"`
	Status      string `json:"status,omitempty" doc:"Budget status"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	ID   string `path:"id" format:"uuid" doc:"Budget UUID"`
	Body UpdateBudgetBody
}

// UpdateBudgetResponseBody is the response body for updating a budget.
type UpdateBudgetResponseBody struct {
	Message string `json:"message" doc:"Outcome description"`
	Data    Budget `json:"data" doc:"The updated budget"`
}

// UpdateBudgetOutput is the Huma output for updating a budget.
type UpdateBudgetOutput struct {
	Body UpdateBudgetResponseBody
}

// budgetUpdater is the interface for applying budget patches.
type budgetUpdater interface {
	UpdateBudget(ctx context.Context, id uuid.UUID, patch service.BudgetPatch) (*budgetstore.Budget, error)
}

// UpdateBudgetHandler handles PUT /budget/update/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/budget/update/{id}",
		Summary:     "Update budget",
		Description: "Applies a partial update. Empty fields keep their stored values.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

// parseUpdateBudgetInput parses the API input into a patch. Empty strings
// stay zero-valued in the patch, which the service reads as "keep stored".
func parseUpdateBudgetInput(input *UpdateBudgetInput) (uuid.UUID, *service.BudgetPatch, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	patch := &service.BudgetPatch{
		Name:   input.Body.Name,
		User:   input.Body.User,
		Status: input.Body.Status,
	}

	if input.Body.TotalBudget != "" {
		patch.TotalBudget, err = decimal.NewFromString(input.Body.TotalBudget)
		if err != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid totalBudget", err)
		}
	}
	if input.Body.StartDate != "" {
		patch.StartDate, err = time.Parse(time.RFC3339, input.Body.StartDate)
		if err != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
	}
	if input.Body.EndDate != "" {
		patch.EndDate, err = time.Parse(time.RFC3339, input.Body.EndDate)
		if err != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
	}

	return id, patch, nil
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	id, patch, err := parseUpdateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	row, err := h.BudgetService.UpdateBudget(ctx, id, *patch)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update budget", err)
	}
	if row == nil {
		return nil, huma.NewError(http.StatusNotFound, "budget not found")
	}

	return &UpdateBudgetOutput{Body: UpdateBudgetResponseBody{
		Message: "update success",
		Data:    fromRow(row),
	}}, nil
}
