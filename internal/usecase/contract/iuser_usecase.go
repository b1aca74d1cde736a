package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// IUserUseCase defines the interface for account related operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, userID string) error
	LoginWithOAuth(ctx context.Context, name, email string) (string, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	CompleteProfile(ctx context.Context, userID string, profile entity.Profile) (*entity.User, error)
	ListUsers(ctx context.Context, callerID string, opts *contract.UserFilterOptions) ([]*entity.User, int64, error)
}
