package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	txnstore "github.com/wisespend/budget-api/internal/storage/transaction"
)

// GetTransactionInput is the Huma input for fetching a transaction.
type GetTransactionInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// GetTransactionOutput is the Huma output for fetching a transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter is the interface for fetching one transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*txnstore.Transaction, error)
}

// GetTransactionHandler handles GET /txn/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/txn/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	row, err := h.TransactionService.GetTransaction(ctx, id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get transaction", err)
	}
	if row == nil {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}

	return &GetTransactionOutput{Body: fromRow(row)}, nil
}
