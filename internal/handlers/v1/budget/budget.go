package budget

import (
	"time"

	"github.com/wisespend/budget-api/internal/service"
	budgetstore "github.com/wisespend/budget-api/internal/storage/budget"
)

// Budget is the API response model for a budget. SpentAmount is present only
// on read endpoints that derive it.
type Budget struct {
	ID          string `json:"id" doc:"Budget UUID"`
	Name        string `json:"name" doc:"Budget name"`
	TotalBudget string `json:"totalBudget" doc:"Decimal allowance"`
	StartDate   string `json:"startDate" doc:"RFC3339 period start"`
	EndDate     string `json:"endDate" doc:"RFC3339 period end"`
	CreatedBy   string `json:"createdBy" doc:"Creator email"`
	User        string `json:"user" doc:"Assigned user email"`
	Status      string `json:"status" doc:"Budget status"`
	CreatedDate string `json:"createdDate" doc:"RFC3339 creation time"`
	UpdatedDate string `json:"updatedDate,omitempty" doc:"RFC3339 last update time"`
	SpentAmount string `json:"spentAmount,omitempty" doc:"Decimal sum of the budget's transactions"`
}

func fromRow(row *budgetstore.Budget) Budget {
	b := Budget{
		ID:          row.ID.String(),
		Name:        row.Name,
		TotalBudget: row.TotalBudget.String(),
		StartDate:   row.StartDate.Format(time.RFC3339),
		EndDate:     row.EndDate.Format(time.RFC3339),
		CreatedBy:   row.CreatedBy,
		User:        row.User,
		Status:      row.Status,
		CreatedDate: row.CreatedDate.Format(time.RFC3339),
	}
	if row.UpdatedDate != nil {
		b.UpdatedDate = row.UpdatedDate.Format(time.RFC3339)
	}
	return b
}

func fromRowWithSpend(row *service.BudgetWithSpend) Budget {
	b := fromRow(&row.Budget)
	b.SpentAmount = row.SpentAmount.String()
	return b
}
