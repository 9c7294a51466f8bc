package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/wisespend/budget-api/internal/service"
	txnstore "github.com/wisespend/budget-api/internal/storage/transaction"
)

// FilterTransactionsBody is the request body for filtering transactions.
// Supplied constraints are combined as a conjunction; omitted ones are not
// applied.
type FilterTransactionsBody struct {
	Email      string   `json:"email" required:"true" format:"email" doc:"Budget owner email"`
	Categories []string `json:"categories,omitempty" doc:"Category names to match"`
	Labels     []string `json:"labels,omitempty" doc:"Labels to match"`
	MinAmount  string   `json:"minAmount,omitempty" doc:"Decimal lower bound, inclusive"`
	MaxAmount  string   `json:"maxAmount,omitempty" doc:"Decimal upper bound, inclusive"`
}

// FilterTransactionsInput is the Huma input for filtering transactions.
type FilterTransactionsInput struct {
	Body FilterTransactionsBody
}

// FilterTransactionsOutput is the Huma output for filtering transactions.
type FilterTransactionsOutput struct {
	Body []Transaction
}

// transactionFilterer is the interface for filtering transactions.
type transactionFilterer interface {
	FilterTransactions(ctx context.Context, input service.TransactionFilterInput) ([]*txnstore.Transaction, error)
}

// FilterTransactionsHandler handles POST /txn/filter.
type FilterTransactionsHandler struct {
	TransactionService transactionFilterer
}

// NewFilterTransactionsHandler creates a new FilterTransactionsHandler.
func NewFilterTransactionsHandler(svc transactionFilterer) *FilterTransactionsHandler {
	return &FilterTransactionsHandler{TransactionService: svc}
}

// Register registers the filter transactions endpoint with the Huma API.
func (h *FilterTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "filter-transactions",
		Method:      http.MethodPost,
		Path:        "/txn/filter",
		Summary:     "Filter transactions",
		Description: "Returns the user's transactions matching every supplied constraint, across their active budgets.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseFilterTransactionsInput parses the API input into the service filter.
func parseFilterTransactionsInput(input *FilterTransactionsInput) (*service.TransactionFilterInput, error) {
	filter := &service.TransactionFilterInput{
		Email:      input.Body.Email,
		Categories: input.Body.Categories,
		Labels:     input.Body.Labels,
	}

	if input.Body.MinAmount != "" {
		minAmount, err := decimal.NewFromString(input.Body.MinAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid minAmount", err)
		}
		filter.MinAmount = &minAmount
	}
	if input.Body.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(input.Body.MaxAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid maxAmount", err)
		}
		filter.MaxAmount = &maxAmount
	}

	return filter, nil
}

func (h *FilterTransactionsHandler) handle(ctx context.Context, input *FilterTransactionsInput) (*FilterTransactionsOutput, error) {
	filter, err := parseFilterTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	rows, err := h.TransactionService.FilterTransactions(ctx, *filter)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to filter transactions", err)
	}

	return &FilterTransactionsOutput{Body: fromRows(rows)}, nil
}
