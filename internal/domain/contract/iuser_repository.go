package contract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// UserFilterOptions narrows user listings. A zero PageSize returns every match.
type UserFilterOptions struct {
	Role     *entity.UserRole
	ClubID   *string
	Page     int
	PageSize int
}

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateProfile replaces the profile block and the completion flag.
	UpdateProfile(ctx context.Context, id string, profile entity.Profile, complete bool) (*entity.User, error)
	// UpdateAffiliation swaps the user's affiliation from `from` to `to`.
	// It fails with ErrAffiliationChanged when the stored value is no longer `from`.
	UpdateAffiliation(ctx context.Context, id string, from, to entity.Affiliation) error
	ListUsers(ctx context.Context, opts *UserFilterOptions) ([]*entity.User, int64, error)
}
