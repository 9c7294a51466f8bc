package user

import (
	"time"

	userstore "github.com/wisespend/budget-api/internal/storage/user"
)

// User is the API response model for a user profile.
type User struct {
	ID          string `json:"id" doc:"User UUID"`
	Name        string `json:"name" doc:"Display name"`
	Email       string `json:"email" doc:"Email address"`
	Avatar      string `json:"avatar" doc:"Avatar URL, may be empty"`
	CreatedDate string `json:"createdDate" doc:"RFC3339 creation time"`
}

func fromRow(row *userstore.User) User {
	return User{
		ID:          row.ID.String(),
		Name:        row.Name,
		Email:       row.Email,
		Avatar:      row.Avatar,
		CreatedDate: row.CreatedDate.Format(time.RFC3339),
	}
}

func fromRows(rows []*userstore.User) []User {
	out := make([]User, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}
