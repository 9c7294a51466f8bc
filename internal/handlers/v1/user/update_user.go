package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	userstore "github.com/wisespend/budget-api/internal/storage/user"
)

// UpdateUserBody is the request body for updating a user. Only supplied
// fields are written.
type UpdateUserBody struct {
	Name   *string `json:"name,omitempty" minLength:"1" doc:"Display name"`
	Email  *string `json:"email,omitempty" format:"email" doc:"Email address"`
	Avatar *string `json:"avatar,omitempty" doc:"Avatar URL, empty string clears it"`
}

// UpdateUserInput is the Huma input for updating a user.
type UpdateUserInput struct {
	ID   string `path:"id" format:"uuid" doc:"User UUID"`
	Body UpdateUserBody
}

// UpdateUserOutput is the Huma output for updating a user.
type UpdateUserOutput struct {
	Body User
}

// userUpdater is the interface for applying user patches.
type userUpdater interface {
	UpdateUser(ctx context.Context, id uuid.UUID, update userstore.UserUpdate) (*userstore.User, error)
}

// UpdateUserHandler handles PUT /api/users/{id}.
type UpdateUserHandler struct {
	UserService userUpdater
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(svc userUpdater) *UpdateUserHandler {
	return &UpdateUserHandler{UserService: svc}
}

// Register registers the update user endpoint with the Huma API.
func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPut,
		Path:        "/api/users/{id}",
		Summary:     "Update user",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user id", err)
	}

	row, err := h.UserService.UpdateUser(ctx, id, userstore.UserUpdate{
		Name:   input.Body.Name,
		Email:  input.Body.Email,
		Avatar: input.Body.Avatar,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update user", err)
	}
	if row == nil {
		return nil, huma.NewError(http.StatusNotFound, "user not found")
	}

	return &UpdateUserOutput{Body: fromRow(row)}, nil
}
