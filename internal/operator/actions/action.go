package actions

import (
	"context"

	"github.com/wisespend/budget-api/internal/storage"
)

// IAction is a single write unit processed by the operator inside one
// transaction. Actions that produce a row carry it back on a Result field.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
