package service

import (
	"github.com/wisespend/budget-api/internal/operator"
	"github.com/wisespend/budget-api/internal/storage"
)

// Budgets are scoped to this status when resolving a user's spendable set.
const activeBudgetStatus = "active"

// Service holds all business logic services.
type Service struct {
	Budget      *BudgetService
	Transaction *TransactionService
	User        *UserService
	Member      *MemberService
	Label       *LabelService
}

// NewService creates a new Service with the given storage and write processor.
func NewService(store *storage.Storage, processor operator.Processor) *Service {
	return &Service{
		Budget:      NewBudgetService(store, processor),
		Transaction: NewTransactionService(store, processor),
		User:        NewUserService(store),
		Member:      NewMemberService(store),
		Label:       NewLabelService(store),
	}
}
