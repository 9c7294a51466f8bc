package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/user"
)

func newTestUserService(t *testing.T) (*UserService, *user.MockIUserTable) {
	t.Helper()
	mockUsers := user.NewMockIUserTable(t)
	return NewUserService(&storage.Storage{Users: mockUsers}), mockUsers
}

func TestCreateUser_StampsCreatedDate(t *testing.T) {
	svc, mockUsers := newTestUserService(t)
	created := &user.User{ID: uuid.Must(uuid.NewV4()), Name: "Anna"}

	mockUsers.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *user.UserCreate) bool {
		return c.Name == "Anna" && !c.CreatedDate.IsZero()
	})).Return(created, nil)

	result, err := svc.CreateUser(context.Background(), user.UserCreate{
		Name:  "Anna",
		Email: "anna@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, created, result)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	svc, mockUsers := newTestUserService(t)

	mockUsers.EXPECT().FindByEmail(mock.Anything, "missing@example.com").Return(nil, nil)

	result, err := svc.GetUserByEmail(context.Background(), "missing@example.com")

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestSearchUsers_PropagatesError(t *testing.T) {
	svc, mockUsers := newTestUserService(t)

	mockUsers.EXPECT().SearchByName(mock.Anything, "ann").
		Return(nil, errors.New("database unavailable"))

	result, err := svc.SearchUsers(context.Background(), "ann")

	assert.Error(t, err)
	assert.Nil(t, result)
}
