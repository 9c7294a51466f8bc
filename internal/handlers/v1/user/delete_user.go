package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// DeleteUserInput is the Huma input for deleting a user.
type DeleteUserInput struct {
	ID string `path:"id" format:"uuid" doc:"User UUID"`
}

// DeleteUserResponseBody is the response body for deleting a user.
type DeleteUserResponseBody struct {
	Message string `json:"message" doc:"Outcome description"`
}

// DeleteUserOutput is the Huma output for deleting a user.
type DeleteUserOutput struct {
	Body DeleteUserResponseBody
}

// userDeleter is the interface for deleting users.
type userDeleter interface {
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// DeleteUserHandler handles DELETE /api/users/{id}.
type DeleteUserHandler struct {
	UserService userDeleter
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(svc userDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{UserService: svc}
}

// Register registers the delete user endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/api/users/{id}",
		Summary:     "Delete user",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user id", err)
	}

	if err := h.UserService.DeleteUser(ctx, id); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete user", err)
	}

	return &DeleteUserOutput{Body: DeleteUserResponseBody{Message: "user deleted"}}, nil
}
