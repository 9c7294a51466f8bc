package service

import (
	"context"

	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/member"
)

// MemberProfile is the display shape of a household member.
type MemberProfile struct {
	Name   string
	Avatar string
}

// MemberService handles household member business logic.
type MemberService struct {
	storage *storage.Storage
}

// NewMemberService creates a new MemberService.
func NewMemberService(store *storage.Storage) *MemberService {
	return &MemberService{storage: store}
}

// CreateMember registers a member under a user's account.
func (s *MemberService) CreateMember(ctx context.Context, create member.MemberCreate) (*member.Member, error) {
	return s.storage.Members.Insert(ctx, &create)
}

// ListMembers returns the member profiles registered under the given email.
func (s *MemberService) ListMembers(ctx context.Context, email string) ([]MemberProfile, error) {
	rows, err := s.storage.Members.ListByUser(ctx, email)
	if err != nil {
		return nil, err
	}

	profiles := make([]MemberProfile, len(rows))
	for i, row := range rows {
		profiles[i] = MemberProfile{Name: row.MemberName, Avatar: row.MemberAvatar}
	}
	return profiles, nil
}
