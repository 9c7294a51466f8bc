package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	userstore "github.com/wisespend/budget-api/internal/storage/user"
)

// SearchUsersInput is the Huma input for searching users by name.
type SearchUsersInput struct {
	Query string `query:"q" required:"true" minLength:"1" doc:"Case-insensitive name substring"`
}

// SearchUsersOutput is the Huma output for searching users.
type SearchUsersOutput struct {
	Body []User
}

// userSearcher is the interface for searching users by name substring.
type userSearcher interface {
	SearchUsers(ctx context.Context, query string) ([]*userstore.User, error)
}

// SearchUsersHandler handles GET /api/users/search.
type SearchUsersHandler struct {
	UserService userSearcher
}

// NewSearchUsersHandler creates a new SearchUsersHandler.
func NewSearchUsersHandler(svc userSearcher) *SearchUsersHandler {
	return &SearchUsersHandler{UserService: svc}
}

// Register registers the search users endpoint with the Huma API.
func (h *SearchUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search-users",
		Method:      http.MethodGet,
		Path:        "/api/users/search",
		Summary:     "Search users",
		Description: "Case-insensitive substring match on display names.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *SearchUsersHandler) handle(ctx context.Context, input *SearchUsersInput) (*SearchUsersOutput, error) {
	rows, err := h.UserService.SearchUsers(ctx, input.Query)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to search users", err)
	}

	return &SearchUsersOutput{Body: fromRows(rows)}, nil
}
