package member

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Member is a household member attached to a user's account. Members are
// display-only (name + avatar); they have no login of their own.
type Member struct {
	ID           uuid.UUID `db:"id"`
	User         string    `db:"user_email"`
	MemberName   string    `db:"member_name"`
	MemberAvatar string    `db:"member_avatar"`
}

// MemberCreate is the input for creating a new member.
type MemberCreate struct {
	User         string
	MemberName   string
	MemberAvatar string
}

// IMemberTable defines the interface for member storage operations.
//
//go:generate mockery --name IMemberTable --output mock_IMemberTable.go
type IMemberTable interface {
	Insert(ctx context.Context, create *MemberCreate) (*Member, error)
	ListByUser(ctx context.Context, email string) ([]*Member, error)
}
