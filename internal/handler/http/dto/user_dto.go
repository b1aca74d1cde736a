package dto

import (
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72,containsuppercase,containslowercase,containsdigit,containssymbol"`
}

// LoginRequest accepts either an email or a username as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest completes or edits the caller's profile.
type UpdateProfileRequest struct {
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `json:"gender" binding:"omitempty,oneof=male female other"`
	Stream      string     `json:"stream" binding:"omitempty,max=64"`
	Course      string     `json:"course" binding:"omitempty,max=64"`
	Phone       string     `json:"phone" binding:"omitempty,max=20"`
	Year        int        `json:"year" binding:"omitempty,min=1,max=8"`
	Semester    int        `json:"semester" binding:"omitempty,min=1,max=16"`
}

func (r UpdateProfileRequest) ToProfile() entity.Profile {
	return entity.Profile{
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,
		Stream:      r.Stream,
		Course:      r.Course,
		Phone:       r.Phone,
		Year:        r.Year,
		Semester:    r.Semester,
	}
}

// ChangeRoleRequest is the admin payload for PUT /users/:id/role.
type ChangeRoleRequest struct {
	Role   string `json:"role" binding:"required,userrole"`
	ClubID string `json:"club_id"`
}
