package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	txnstore "github.com/wisespend/budget-api/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Title     string `json:"title" required:"true" minLength:"1" doc:"Transaction title"`
	Amount    string `json:"amount" required:"true" doc:"Signed decimal amount"`
	Category  string `json:"category" required:"true" minLength:"1" doc:"Category name"`
	Label     string `json:"label,omitempty" doc:"Optional label"`
	Date      string `json:"date" required:"true" format:"date-time" doc:"RFC3339 transaction date"`
	BudgetID  string `json:"budgetId" required:"true" format:"uuid" doc:"Budget UUID; existence is not checked"`
	CreatedBy string `json:"createdBy" required:"true" format:"email" doc:"Creator email"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create txnstore.TransactionCreate) (*txnstore.Transaction, error)
}

// CreateTransactionHandler handles POST /txn/create.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/txn/create",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction. The referenced budget is not checked for existence.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses the API input into a storage create.
// CreatedDate is stamped by the service.
func parseCreateTransactionInput(input *CreateTransactionInput) (*txnstore.TransactionCreate, error) {
	budgetID, err := uuid.FromString(input.Body.BudgetID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budgetId", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	date, err := time.Parse(time.RFC3339, input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	return &txnstore.TransactionCreate{
		Title:     input.Body.Title,
		Amount:    amount,
		Category:  input.Body.Category,
		Label:     input.Body.Label,
		Date:      date,
		BudgetID:  budgetID,
		CreatedBy: input.Body.CreatedBy,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	row, err := h.TransactionService.CreateTransaction(ctx, *create)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{Body: fromRow(row)}, nil
}
