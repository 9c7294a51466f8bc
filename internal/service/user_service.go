package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/user"
)

// UserService handles user business logic. User writes are simple single-row
// operations and go straight to the table layer.
type UserService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store, now: time.Now}
}

// CreateUser persists a new user, stamping the created date.
func (s *UserService) CreateUser(ctx context.Context, create user.UserCreate) (*user.User, error) {
	create.CreatedDate = s.now()
	return s.storage.Users.Insert(ctx, &create)
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*user.User, error) {
	return s.storage.Users.List(ctx)
}

// SearchUsers returns users whose name contains the query, case insensitively.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]*user.User, error) {
	return s.storage.Users.SearchByName(ctx, query)
}

// GetUser retrieves a user by id. Returns (nil, nil) when absent.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.storage.Users.FindByID(ctx, id)
}

// GetUserByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.storage.Users.FindByEmail(ctx, email)
}

// UpdateUser applies a strict patch. Returns (nil, nil) when the user does
// not exist.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, update user.UserUpdate) (*user.User, error) {
	return s.storage.Users.Update(ctx, id, &update)
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.storage.Users.Delete(ctx, id)
}
