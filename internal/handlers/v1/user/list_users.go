package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	userstore "github.com/wisespend/budget-api/internal/storage/user"
)

// ListUsersInput is the Huma input for listing users.
type ListUsersInput struct{}

// ListUsersOutput is the Huma output for listing users.
type ListUsersOutput struct {
	Body []User
}

// userLister is the interface for listing users.
type userLister interface {
	ListUsers(ctx context.Context) ([]*userstore.User, error)
}

// ListUsersHandler handles GET /api/users.
type ListUsersHandler struct {
	UserService userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "List users",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, _ *ListUsersInput) (*ListUsersOutput, error) {
	rows, err := h.UserService.ListUsers(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list users", err)
	}

	return &ListUsersOutput{Body: fromRows(rows)}, nil
}
