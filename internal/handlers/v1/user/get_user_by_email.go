package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	userstore "github.com/wisespend/budget-api/internal/storage/user"
)

// GetUserByEmailInput is the Huma input for fetching a user by email.
type GetUserByEmailInput struct {
	Email string `path:"email" doc:"Email address"`
}

// GetUserByEmailOutput is the Huma output for fetching a user by email.
type GetUserByEmailOutput struct {
	Body User
}

// userEmailGetter is the interface for fetching one user by email.
type userEmailGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*userstore.User, error)
}

// GetUserByEmailHandler handles GET /api/users/email/{email}.
type GetUserByEmailHandler struct {
	UserService userEmailGetter
}

// NewGetUserByEmailHandler creates a new GetUserByEmailHandler.
func NewGetUserByEmailHandler(svc userEmailGetter) *GetUserByEmailHandler {
	return &GetUserByEmailHandler{UserService: svc}
}

// Register registers the get user by email endpoint with the Huma API.
func (h *GetUserByEmailHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user-by-email",
		Method:      http.MethodGet,
		Path:        "/api/users/email/{email}",
		Summary:     "Get user by email",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserByEmailHandler) handle(ctx context.Context, input *GetUserByEmailInput) (*GetUserByEmailOutput, error) {
	row, err := h.UserService.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get user", err)
	}
	if row == nil {
		return nil, huma.NewError(http.StatusNotFound, "user not found")
	}

	return &GetUserByEmailOutput{Body: fromRow(row)}, nil
}
