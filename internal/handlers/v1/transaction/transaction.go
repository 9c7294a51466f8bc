package transaction

import (
	"time"

	txnstore "github.com/wisespend/budget-api/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Title       string `json:"title" doc:"Transaction title"`
	Amount      string `json:"amount" doc:"Signed decimal amount"`
	Category    string `json:"category" doc:"Category name"`
	Label       string `json:"label" doc:"Label, empty when unlabeled"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	BudgetID    string `json:"budgetId" doc:"Budget UUID"`
	CreatedBy   string `json:"createdBy" doc:"Creator email"`
	CreatedDate string `json:"createdDate" doc:"RFC3339 creation time"`
}

func fromRow(row *txnstore.Transaction) Transaction {
	return Transaction{
		ID:          row.ID.String(),
		Title:       row.Title,
		Amount:      row.Amount.String(),
		Category:    row.Category,
		Label:       row.Label,
		Date:        row.Date.Format(time.RFC3339),
		BudgetID:    row.BudgetID.String(),
		CreatedBy:   row.CreatedBy,
		CreatedDate: row.CreatedDate.Format(time.RFC3339),
	}
}

func fromRows(rows []*txnstore.Transaction) []Transaction {
	out := make([]Transaction, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
