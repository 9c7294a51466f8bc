package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/wisespend/budget-api/internal/logging"
	"github.com/wisespend/budget-api/internal/service"
)

// UserSpentInput is the Huma input for the rolling spend summary.
type UserSpentInput struct {
	Email string `path:"email" doc:"User email"`
}

// UserSpentResponseBody is the response body for the rolling spend summary.
// When the user has no active budgets or no transactions in them, only
// Message is set: that empty state is distinct from a zero spend.
type UserSpentResponseBody struct {
	Message             string `json:"message,omitempty" doc:"Informational message when there is nothing to sum"`
	TotalAmountToday    string `json:"totalAmountToday,omitempty" doc:"Decimal sum of today's transactions"`
	TotalAmountThisWeek string `json:"totalAmountThisWeek,omitempty" doc:"Decimal sum of this week's transactions, Sunday through Saturday"`
}

// UserSpentOutput is the Huma output for the rolling spend summary.
type UserSpentOutput struct {
	Body UserSpentResponseBody
}

// spentProvider is the interface for computing rolling spend windows.
type spentProvider interface {
	GetUserSpent(ctx context.Context, email string) (*service.SpentWindow, error)
}

// UserSpentHandler handles GET /txn/spent/{email}.
type UserSpentHandler struct {
	TransactionService spentProvider
}

// NewUserSpentHandler creates a new UserSpentHandler.
func NewUserSpentHandler(svc spentProvider) *UserSpentHandler {
	return &UserSpentHandler{TransactionService: svc}
}

// Register registers the user spent endpoint with the Huma API.
func (h *UserSpentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "user-spent",
		Method:      http.MethodGet,
		Path:        "/txn/spent/{email}",
		Summary:     "User spend summary",
		Description: "Returns the user's spend for today and for the current week across their active budgets.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UserSpentHandler) handle(ctx context.Context, input *UserSpentInput) (*UserSpentOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("userSpentMs")
	}
	window, err := h.TransactionService.GetUserSpent(ctx, input.Email)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute user spend", err)
	}

	if window == nil {
		return &UserSpentOutput{Body: UserSpentResponseBody{
			Message: "no transactions found",
		}}, nil
	}

	return &UserSpentOutput{Body: UserSpentResponseBody{
		TotalAmountToday:    window.TotalAmountToday.String(),
		TotalAmountThisWeek: window.TotalAmountThisWeek.String(),
	}}, nil
}
