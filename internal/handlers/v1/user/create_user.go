package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	userstore "github.com/wisespend/budget-api/internal/storage/user"
)

// CreateUserBody is the request body for creating a user.
type CreateUserBody struct {
	Name   string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	Email  string `json:"email" required:"true" format:"email" doc:"Email address"`
	Avatar string `json:"avatar,omitempty" doc:"Avatar URL"`
}

// CreateUserInput is the Huma input for creating a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserOutput is the Huma output for creating a user.
type CreateUserOutput struct {
	Body User
}

// userCreator is the interface for creating users.
type userCreator interface {
	CreateUser(ctx context.Context, create userstore.UserCreate) (*userstore.User, error)
}

// CreateUserHandler handles POST /api/users.
type CreateUserHandler struct {
	UserService userCreator
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(svc userCreator) *CreateUserHandler {
	return &CreateUserHandler{UserService: svc}
}

// Register registers the create user endpoint with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/api/users",
		Summary:       "Create user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	row, err := h.UserService.CreateUser(ctx, userstore.UserCreate{
		Name:   input.Body.Name,
		Email:  input.Body.Email,
		Avatar: input.Body.Avatar,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create user", err)
	}

	return &CreateUserOutput{Body: fromRow(row)}, nil
}
