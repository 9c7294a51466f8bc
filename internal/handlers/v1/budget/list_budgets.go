package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/wisespend/budget-api/internal/logging"
	"github.com/wisespend/budget-api/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Email  string `path:"email" doc:"Owner email"`
	Status string `path:"status" doc:"Budget status to match"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body []Budget
}

// budgetLister is the interface for listing budgets with derived spend.
type budgetLister interface {
	ListBudgets(ctx context.Context, email, status string) ([]*service.BudgetWithSpend, error)
}

// ListBudgetsHandler handles GET /budget/all/{email}/{status}.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/budget/all/{email}/{status}",
		Summary:     "List budgets",
		Description: "Returns the user's budgets in the given status, each with its derived spent amount.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	budgets, err := h.BudgetService.ListBudgets(ctx, input.Email, input.Status)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list budgets", err)
	}

	if logData != nil {
		logData.AddData("budgetCount", len(budgets))
	}

	out := &ListBudgetsOutput{Body: make([]Budget, len(budgets))}
	for i, b := range budgets {
		out.Body[i] = fromRowWithSpend(b)
	}
	return out, nil
}
