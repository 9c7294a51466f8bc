package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record.
type User struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Avatar      string    `db:"avatar"`
	CreatedDate time.Time `db:"created_date"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Name        string
	Email       string
	Avatar      string
	CreatedDate time.Time
}

// UserUpdate is a strict patch: only non-nil fields are written.
type UserUpdate struct {
	Name   *string
	Email  *string
	Avatar *string
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	// FindByID returns (nil, nil) when no user exists with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByEmail returns (nil, nil) when no user exists with the given email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// SearchByName matches the query as a case-insensitive name substring.
	SearchByName(ctx context.Context, query string) ([]*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
