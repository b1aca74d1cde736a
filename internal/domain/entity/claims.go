package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is the decoded content of an access or refresh token.
type Claims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
