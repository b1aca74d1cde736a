package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID              string      `bson:"_id,omitempty" json:"id"`
	Username        string      `bson:"username" json:"username"`
	Email           string      `bson:"email" json:"email"`
	PasswordHash    string      `bson:"password_hash" json:"-"`
	Affiliation     Affiliation `bson:"affiliation" json:"affiliation"`
	Profile         Profile     `bson:"profile" json:"profile"`
	ProfileComplete bool        `bson:"profile_complete" json:"profile_complete"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updated_at"`
}

// Profile holds the optional demographic and academic details of a user.
type Profile struct {
	DateOfBirth *time.Time `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Gender      string     `bson:"gender,omitempty" json:"gender,omitempty"`
	Stream      string     `bson:"stream,omitempty" json:"stream,omitempty"`
	Course      string     `bson:"course,omitempty" json:"course,omitempty"`
	Phone       string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Year        int        `bson:"year,omitempty" json:"year,omitempty"`
	Semester    int        `bson:"semester,omitempty" json:"semester,omitempty"`
}

// IsComplete reports whether every field needed to take part in club life is filled in.
func (p Profile) IsComplete() bool {
	return p.DateOfBirth != nil &&
		p.Gender != "" &&
		p.Stream != "" &&
		p.Course != "" &&
		p.Phone != "" &&
		p.Year > 0 &&
		p.Semester > 0
}

// Role is a shortcut for u.Affiliation.Role.
func (u *User) Role() UserRole {
	return u.Affiliation.Role
}
