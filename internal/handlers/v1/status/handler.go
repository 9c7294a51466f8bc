package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusOutput is the Huma output for the health check.
type StatusOutput struct {
	Body struct {
		Status string `json:"status" doc:"Always ok while the process is serving"`
	}
}

// Handler handles GET /status.
type Handler struct{}

// NewHandler creates a new status Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Health check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*StatusOutput, error) {
	out := &StatusOutput{}
	out.Body.Status = "ok"
	return out, nil
}
