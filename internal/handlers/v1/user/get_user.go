package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	userstore "github.com/wisespend/budget-api/internal/storage/user"
)

// GetUserInput is the Huma input for fetching a user by id.
type GetUserInput struct {
	ID string `path:"id" format:"uuid" doc:"User UUID"`
}

// GetUserOutput is the Huma output for fetching a user.
type GetUserOutput struct {
	Body User
}

// userGetter is the interface for fetching one user by id.
type userGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*userstore.User, error)
}

// GetUserHandler handles GET /api/users/{id}.
type GetUserHandler struct {
	UserService userGetter
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(svc userGetter) *GetUserHandler {
	return &GetUserHandler{UserService: svc}
}

// Register registers the get user endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}",
		Summary:     "Get user",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user id", err)
	}

	row, err := h.UserService.GetUser(ctx, id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get user", err)
	}
	if row == nil {
		return nil, huma.NewError(http.StatusNotFound, "user not found")
	}

	return &GetUserOutput{Body: fromRow(row)}, nil
}
