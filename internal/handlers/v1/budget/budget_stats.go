package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/wisespend/budget-api/internal/logging"
	"github.com/wisespend/budget-api/internal/service"
)

// BudgetStatsInput is the Huma input for budget statistics.
type BudgetStatsInput struct {
	ID string `path:"id" format:"uuid" doc:"Budget UUID"`
}

// AmountCount is one stats bucket: the decimal sum and occurrence count of
// the transactions sharing a key.
type AmountCount struct {
	SumAmount string `json:"sumAmount" doc:"Decimal sum of amounts in the bucket"`
	Count     int    `json:"count" doc:"Number of transactions in the bucket"`
}

// BudgetStatsResponseBody is the response body for budget statistics. When
// the budget has no transactions only Message is set.
type BudgetStatsResponseBody struct {
	Message          string                 `json:"message,omitempty" doc:"Informational message when there is nothing to aggregate"`
	DatesData        map[string]string      `json:"datesData,omitempty" doc:"Decimal spend per UTC calendar day (YYYY-MM-DD keys)"`
	CategoryTxnCount map[string]AmountCount `json:"categoryTxnCount,omitempty" doc:"Per-category sum and count"`
	LabelTxnCount    map[string]AmountCount `json:"labelTxnCount,omitempty" doc:"Per-label sum and count; unlabeled transactions bucket under the empty key"`
}

// BudgetStatsOutput is the Huma output for budget statistics.
type BudgetStatsOutput struct {
	Body BudgetStatsResponseBody
}

// statsProvider is the interface for computing budget statistics.
type statsProvider interface {
	GetBudgetStats(ctx context.Context, id uuid.UUID) (*service.BudgetStats, service.StatsOutcome, error)
}

// BudgetStatsHandler handles GET /budget/stats/{id}.
type BudgetStatsHandler struct {
	BudgetService statsProvider
}

// NewBudgetStatsHandler creates a new BudgetStatsHandler.
func NewBudgetStatsHandler(svc statsProvider) *BudgetStatsHandler {
	return &BudgetStatsHandler{BudgetService: svc}
}

// Register registers the budget stats endpoint with the Huma API.
func (h *BudgetStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-stats",
		Method:      http.MethodGet,
		Path:        "/budget/stats/{id}",
		Summary:     "Budget statistics",
		Description: "Aggregates the budget's transactions per day, per category, and per label.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *BudgetStatsHandler) handle(ctx context.Context, input *BudgetStatsInput) (*BudgetStatsOutput, error) {
	logData := logging.GetLogData(ctx)
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetStatsMs")
	}
	stats, outcome, err := h.BudgetService.GetBudgetStats(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute budget stats", err)
	}

	switch outcome {
	case service.StatsBudgetNotFound:
		return nil, huma.NewError(http.StatusNotFound, "budget not found")
	case service.StatsNoTransactions:
		return &BudgetStatsOutput{Body: BudgetStatsResponseBody{
			Message: "no transactions found for this budget",
		}}, nil
	}

	body := BudgetStatsResponseBody{
		DatesData:        make(map[string]string, len(stats.DatesData)),
		CategoryTxnCount: make(map[string]AmountCount, len(stats.CategoryTxnCount)),
		LabelTxnCount:    make(map[string]AmountCount, len(stats.LabelTxnCount)),
	}
	for day, sum := range stats.DatesData {
		body.DatesData[day] = sum.String()
	}
	for category, bucket := range stats.CategoryTxnCount {
		body.CategoryTxnCount[category] = AmountCount{SumAmount: bucket.SumAmount.String(), Count: bucket.Count}
	}
	for label, bucket := range stats.LabelTxnCount {
		body.LabelTxnCount[label] = AmountCount{SumAmount: bucket.SumAmount.String(), Count: bucket.Count}
	}

	return &BudgetStatsOutput{Body: body}, nil
}
