package label

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ListLabelsInput is the Huma input for listing a user's labels.
type ListLabelsInput struct {
	Email string `path:"email" doc:"User email"`
}

// ListLabelsOutput is the Huma output for listing labels.
type ListLabelsOutput struct {
	Body []string
}

// labelLister is the interface for listing a user's labels.
type labelLister interface {
	ListLabels(ctx context.Context, email string) ([]string, error)
}

// ListLabelsHandler handles GET /label/all/{email}.
type ListLabelsHandler struct {
	LabelService labelLister
}

// NewListLabelsHandler creates a new ListLabelsHandler.
func NewListLabelsHandler(svc labelLister) *ListLabelsHandler {
	return &ListLabelsHandler{LabelService: svc}
}

// Register registers the list labels endpoint with the Huma API.
func (h *ListLabelsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-labels",
		Method:      http.MethodGet,
		Path:        "/label/all/{email}",
		Summary:     "List labels",
		Description: "Returns the user's label names as a flat list.",
		Tags:        []string{"Labels"},
	}, h.handle)
}

func (h *ListLabelsHandler) handle(ctx context.Context, input *ListLabelsInput) (*ListLabelsOutput, error) {
	labels, err := h.LabelService.ListLabels(ctx, input.Email)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list labels", err)
	}

	return &ListLabelsOutput{Body: labels}, nil
}
