package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	userstore "github.com/wisespend/budget-api/internal/storage/user"
)

// mockUserService is a mock for the handler consumer interfaces.
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, create userstore.UserCreate) (*userstore.User, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userstore.User), args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*userstore.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userstore.User), args.Error(1)
}

func (m *mockUserService) SearchUsers(ctx context.Context, query string) ([]*userstore.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userstore.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (*userstore.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userstore.User), args.Error(1)
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (*userstore.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userstore.User), args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id uuid.UUID, update userstore.UserUpdate) (*userstore.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userstore.User), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func makeStoredUser() *userstore.User {
	return &userstore.User{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        "Anna",
		Email:       "anna@example.com",
		Avatar:      "https://example.com/anna.png",
		CreatedDate: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_CreateUser_Success(t *testing.T) {
	stored := makeStoredUser()
	mockSvc := new(mockUserService)
	mockSvc.On("CreateUser", mock.Anything, mock.MatchedBy(func(c userstore.UserCreate) bool {
		return c.Name == "Anna" && c.Email == "anna@example.com"
	})).Return(stored, nil)

	_, api := humatest.New(t)
	NewCreateUserHandler(mockSvc).Register(api)

	resp := api.Post("/api/users", CreateUserBody{
		Name:  "Anna",
		Email: "anna@example.com",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, stored.ID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateUser_MissingEmail(t *testing.T) {
	mockSvc := new(mockUserService)

	_, api := humatest.New(t)
	NewCreateUserHandler(mockSvc).Register(api)

	resp := api.Post("/api/users", CreateUserBody{Name: "Anna"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateUser")
}

func TestHTTP_SearchUsers_Success(t *testing.T) {
	stored := makeStoredUser()
	mockSvc := new(mockUserService)
	mockSvc.On("SearchUsers", mock.Anything, "ann").
		Return([]*userstore.User{stored}, nil)

	_, api := humatest.New(t)
	NewSearchUsersHandler(mockSvc).Register(api)

	resp := api.Get("/api/users/search?q=ann")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, "Anna", body[0].Name)
}

func TestHTTP_GetUser_NotFound(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("GetUser", mock.Anything, mock.Anything).Return(nil, nil)

	_, api := humatest.New(t)
	NewGetUserHandler(mockSvc).Register(api)

	resp := api.Get("/api/users/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetUserByEmail_NotFound(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("GetUserByEmail", mock.Anything, "missing@example.com").Return(nil, nil)

	_, api := humatest.New(t)
	NewGetUserByEmailHandler(mockSvc).Register(api)

	resp := api.Get("/api/users/email/missing@example.com")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateUser_Success(t *testing.T) {
	stored := makeStoredUser()
	mockSvc := new(mockUserService)
	mockSvc.On("UpdateUser", mock.Anything, stored.ID, mock.MatchedBy(func(u userstore.UserUpdate) bool {
		return u.Name != nil && *u.Name == "Anne" && u.Email == nil
	})).Return(stored, nil)

	_, api := humatest.New(t)
	NewUpdateUserHandler(mockSvc).Register(api)

	name := "Anne"
	resp := api.Put("/api/users/"+stored.ID.String(), UpdateUserBody{Name: &name})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteUser_ServiceError(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("DeleteUser", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewDeleteUserHandler(mockSvc).Register(api)

	resp := api.Delete("/api/users/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
