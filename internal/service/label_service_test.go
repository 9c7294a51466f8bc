package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wisespend/budget-api/internal/storage"
	"github.com/wisespend/budget-api/internal/storage/label"
	"github.com/wisespend/budget-api/internal/storage/member"
)

func TestListLabels_FlattensStoredSets(t *testing.T) {
	mockLabels := label.NewMockILabelTable(t)
	svc := NewLabelService(&storage.Storage{Labels: mockLabels})

	mockLabels.EXPECT().ListByUser(mock.Anything, "anna@example.com").
		Return([]*label.LabelSet{
			{Labels: "groceries|rent"},
			{Labels: "fun"},
		}, nil)

	labels, err := svc.ListLabels(context.Background(), "anna@example.com")

	assert.NoError(t, err)
	assert.Equal(t, []string{"groceries", "rent", "fun"}, labels)
}

func TestListLabels_NoRows(t *testing.T) {
	mockLabels := label.NewMockILabelTable(t)
	svc := NewLabelService(&storage.Storage{Labels: mockLabels})

	mockLabels.EXPECT().ListByUser(mock.Anything, mock.Anything).
		Return([]*label.LabelSet{}, nil)

	labels, err := svc.ListLabels(context.Background(), "anna@example.com")

	assert.NoError(t, err)
	assert.Empty(t, labels)
	assert.NotNil(t, labels, "empty result renders as [] not null")
}

func TestListMembers_MapsProfiles(t *testing.T) {
	mockMembers := member.NewMockIMemberTable(t)
	svc := NewMemberService(&storage.Storage{Members: mockMembers})

	mockMembers.EXPECT().ListByUser(mock.Anything, "anna@example.com").
		Return([]*member.Member{
			{MemberName: "Tom", MemberAvatar: "https://example.com/tom.png"},
		}, nil)

	profiles, err := svc.ListMembers(context.Background(), "anna@example.com")

	assert.NoError(t, err)
	assert.Equal(t, []MemberProfile{{Name: "Tom", Avatar: "https://example.com/tom.png"}}, profiles)
}
