package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wisespend/budget-api/internal/storage/budget"
)

// BudgetWithSpend pairs a stored budget with its derived spent amount.
// SpentAmount is recomputed from the transaction set on every read and is
// never persisted.
type BudgetWithSpend struct {
	budget.Budget
	SpentAmount decimal.Decimal
}

// BudgetPatch is the update input. Zero-valued fields are treated as absent
// and fall back to the stored value: this coalescing merge is deliberate,
// carried over from the existing API contract. It means an update can never
// set a field to its zero value (empty status, zero allowance). CreatedBy is
// not patchable.
type BudgetPatch struct {
	Name        string
	TotalBudget decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	User        string
	Status      string
}

// AmountCount accumulates a sum and an occurrence count for one stats bucket.
type AmountCount struct {
	SumAmount decimal.Decimal
	Count     int
}

// BudgetStats is the per-budget statistics payload, computed per request and
// never persisted. DatesData keys are UTC calendar days (YYYY-MM-DD), so
// lexicographic key order is chronological order.
type BudgetStats struct {
	DatesData        map[string]decimal.Decimal
	CategoryTxnCount map[string]AmountCount
	LabelTxnCount    map[string]AmountCount
}

// StatsOutcome distinguishes the three results of a statistics computation.
// Callers switch on it instead of comparing sentinel strings.
type StatsOutcome int

const (
	StatsOK StatsOutcome = iota
	// StatsBudgetNotFound means the budget was deleted between the caller's
	// existence check and the computation.
	StatsBudgetNotFound
	// StatsNoTransactions means the budget exists but has nothing to
	// aggregate. Endpoints render this as an informational success, not an
	// error.
	StatsNoTransactions
)
