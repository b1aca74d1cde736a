package contract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// IClubRepository provides methods for managing club data in the database.
type IClubRepository interface {
	CreateClub(ctx context.Context, club *entity.Club) error
	GetClubByID(ctx context.Context, id string) (*entity.Club, error)
	GetClubByName(ctx context.Context, name string) (*entity.Club, error)
	// GetClubByCoordinator resolves the club whose coordinator is userID.
	GetClubByCoordinator(ctx context.Context, userID string) (*entity.Club, error)
	ListClubs(ctx context.Context) ([]*entity.Club, error)
	// SetCoordinator replaces the coordinator only if it is still `from`.
	SetCoordinator(ctx context.Context, clubID, from, to string) error
}
