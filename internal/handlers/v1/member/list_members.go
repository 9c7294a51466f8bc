package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/wisespend/budget-api/internal/service"
)

// MemberProfile is the display shape of a household member.
type MemberProfile struct {
	Name   string `json:"name" doc:"Member display name"`
	Avatar string `json:"avatar" doc:"Member avatar URL"`
}

// ListMembersInput is the Huma input for listing a user's members.
type ListMembersInput struct {
	Email string `path:"email" doc:"Owning user's email"`
}

// ListMembersOutput is the Huma output for listing members.
type ListMembersOutput struct {
	Body []MemberProfile
}

// memberLister is the interface for listing a user's members.
type memberLister interface {
	ListMembers(ctx context.Context, email string) ([]service.MemberProfile, error)
}

// ListMembersHandler handles GET /member/{email}.
type ListMembersHandler struct {
	MemberService memberLister
}

// NewListMembersHandler creates a new ListMembersHandler.
func NewListMembersHandler(svc memberLister) *ListMembersHandler {
	return &ListMembersHandler{MemberService: svc}
}

// Register registers the list members endpoint with the Huma API.
func (h *ListMembersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-members",
		Method:      http.MethodGet,
		Path:        "/member/{email}",
		Summary:     "List members",
		Tags:        []string{"Members"},
	}, h.handle)
}

func (h *ListMembersHandler) handle(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	profiles, err := h.MemberService.ListMembers(ctx, input.Email)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list members", err)
	}

	out := &ListMembersOutput{Body: make([]MemberProfile, len(profiles))}
	for i, p := range profiles {
		out.Body[i] = MemberProfile{Name: p.Name, Avatar: p.Avatar}
	}
	return out, nil
}
