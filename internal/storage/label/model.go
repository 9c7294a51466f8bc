package label

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// LabelSet is a row of the labels table. The labels column stores the user's
// label names as a single pipe-separated string; splitting happens in the
// service layer.
type LabelSet struct {
	ID     uuid.UUID `db:"id"`
	User   string    `db:"user_email"`
	Labels string    `db:"labels"`
}

// ILabelTable defines the interface for label storage operations.
//
//go:generate mockery --name ILabelTable --output mock_ILabelTable.go
type ILabelTable interface {
	ListByUser(ctx context.Context, email string) ([]*LabelSet, error)
}
