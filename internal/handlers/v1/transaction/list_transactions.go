package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/wisespend/budget-api/internal/logging"
	"github.com/wisespend/budget-api/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Email string `path:"email" doc:"Budget owner email"`
	Page  int    `path:"page" minimum:"1" doc:"1-based page number"`
	Count int    `path:"count" minimum:"1" maximum:"100" doc:"Page size"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
// Max is the largest single amount across the user's active budgets, used by
// the client as a range-slider bound; it is null when there are no
// transactions at all.
type ListTransactionsResponseBody struct {
	Txns  []Transaction `json:"txns" doc:"Page of transactions, newest first"`
	Max   *string       `json:"max" doc:"Largest decimal amount across all pages, null when there are no transactions"`
	Count int64         `json:"count" doc:"Total number of transactions across all pages"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for paging transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, email string, page, count int) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /txn/all/{email}/{page}/{count}.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/txn/all/{email}/{page}/{count}",
		Summary:     "List transactions",
		Description: "Returns one page of the user's transactions across their active budgets, ordered by date descending.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.ListTransactions(ctx, input.Email, input.Page, input.Count)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Transactions))
	}

	body := ListTransactionsResponseBody{
		Txns:  fromRows(page.Transactions),
		Count: page.TotalCount,
	}
	if page.MaxAmount != nil {
		max := page.MaxAmount.String()
		body.Max = &max
	}

	return &ListTransactionsOutput{Body: body}, nil
}
