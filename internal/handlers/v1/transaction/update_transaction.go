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

// UpdateTransactionBody is the request body for updating a transaction.
// Only supplied fields are written. Unlike budget updates, an explicit empty
// label clears the label.
type UpdateTransactionBody struct {
	Title    *string `json:"title,omitempty" doc:"Transaction title"`
	Amount   *string `json:"amount,omitempty" doc:"Signed decimal amount"`
	Category *string `json:"category,omitempty" doc:"Category name"`
	Label    *string `json:"label,omitempty" doc:"Label, empty string clears it"`
	Date     *string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date"`
	BudgetID *string `json:"budgetId,omitempty" format:"uuid" doc:"Budget UUID"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for applying transaction patches.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id uuid.UUID, update txnstore.TransactionUpdate) (*txnstore.Transaction, error)
}

// UpdateTransactionHandler handles PUT /txn/update/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/txn/update/{id}",
		Summary:     "Update transaction",
		Description: "Writes the supplied fields and returns the updated row.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseUpdateTransactionInput parses the API input into a storage update.
func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, *txnstore.TransactionUpdate, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	update := &txnstore.TransactionUpdate{
		Title:    input.Body.Title,
		Category: input.Body.Category,
		Label:    input.Body.Label,
	}

	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		update.Amount = &amount
	}
	if input.Body.Date != nil {
		date, err := time.Parse(time.RFC3339, *input.Body.Date)
		if err != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		update.Date = &date
	}
	if input.Body.BudgetID != nil {
		budgetID, err := uuid.FromString(*input.Body.BudgetID)
		if err != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid budgetId", err)
		}
		update.BudgetID = &budgetID
	}

	return id, update, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, update, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	row, err := h.TransactionService.UpdateTransaction(ctx, id, *update)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}
	if row == nil {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}

	return &UpdateTransactionOutput{Body: fromRow(row)}, nil
}
