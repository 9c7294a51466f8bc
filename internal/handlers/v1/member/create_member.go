package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	memberstore "github.com/wisespend/budget-api/internal/storage/member"
)

// CreateMemberBody is the request body for registering a household member.
type CreateMemberBody struct {
	User         string `json:"user" required:"true" format:"email" doc:"Owning user's email"`
	MemberName   string `json:"memberName" required:"true" minLength:"1" doc:"Member display name"`
	MemberAvatar string `json:"memberAvatar,omitempty" doc:"Member avatar URL"`
}

// CreateMemberInput is the Huma input for registering a member.
type CreateMemberInput struct {
	Body CreateMemberBody
}

// CreateMemberResponseBody is the response body for registering a member.
type CreateMemberResponseBody struct {
	ID           string `json:"id" doc:"Member UUID"`
	User         string `json:"user" doc:"Owning user's email"`
	MemberName   string `json:"memberName" doc:"Member display name"`
	MemberAvatar string `json:"memberAvatar" doc:"Member avatar URL"`
}

// CreateMemberOutput is the Huma output for registering a member.
type CreateMemberOutput struct {
	Body CreateMemberResponseBody
}

// memberCreator is the interface for registering members.
type memberCreator interface {
	CreateMember(ctx context.Context, create memberstore.MemberCreate) (*memberstore.Member, error)
}

// CreateMemberHandler handles POST /member/create.
type CreateMemberHandler struct {
	MemberService memberCreator
}

// NewCreateMemberHandler creates a new CreateMemberHandler.
func NewCreateMemberHandler(svc memberCreator) *CreateMemberHandler {
	return &CreateMemberHandler{MemberService: svc}
}

// Register registers the create member endpoint with the Huma API.
func (h *CreateMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-member",
		Method:        http.MethodPost,
		Path:          "/member/create",
		Summary:       "Create member",
		Description:   "Registers a household member under a user's account.",
		Tags:          []string{"Members"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateMemberHandler) handle(ctx context.Context, input *CreateMemberInput) (*CreateMemberOutput, error) {
	row, err := h.MemberService.CreateMember(ctx, memberstore.MemberCreate{
		User:         input.Body.User,
		MemberName:   input.Body.MemberName,
		MemberAvatar: input.Body.MemberAvatar,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create member", err)
	}

	return &CreateMemberOutput{Body: CreateMemberResponseBody{
		ID:           row.ID.String(),
		User:         row.User,
		MemberName:   row.MemberName,
		MemberAvatar: row.MemberAvatar,
	}}, nil
}
