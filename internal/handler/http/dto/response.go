package dto

import (
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID              string         `json:"id"`
	Username        string         `json:"username"`
	Email           string         `json:"email"`
	Role            string         `json:"role"`
	ClubID          string         `json:"club_id,omitempty"`
	Profile         entity.Profile `json:"profile"`
	ProfileComplete bool           `json:"profile_complete"`
	CreatedAt       string         `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenResponse is returned by refresh and OAuth sign-in.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		Role:            string(user.Affiliation.Role),
		ClubID:          user.Affiliation.ClubID,
		Profile:         user.Profile,
		ProfileComplete: user.ProfileComplete,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(*u))
	}
	return out
}

// UserListResponse is a page of users with the total match count.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors. Code carries the error kind.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
