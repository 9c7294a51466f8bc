package service

import (
	"context"
	"strings"

	"github.com/wisespend/budget-api/internal/storage"
)

// labelSeparator is the delimiter used inside the stored labels column.
const labelSeparator = "|"

// LabelService handles label business logic.
type LabelService struct {
	storage *storage.Storage
}

// NewLabelService creates a new LabelService.
func NewLabelService(store *storage.Storage) *LabelService {
	return &LabelService{storage: store}
}

// ListLabels returns the user's label names, flattened from the stored
// pipe-separated sets. Returns an empty slice when the user has none.
func (s *LabelService) ListLabels(ctx context.Context, email string) ([]string, error) {
	rows, err := s.storage.Labels.ListByUser(ctx, email)
	if err != nil {
		return nil, err
	}

	labels := []string{}
	for _, row := range rows {
		labels = append(labels, strings.Split(row.Labels, labelSeparator)...)
	}
	return labels, nil
}
